package main

import (
	"fmt"
	"strings"
)

func init() {
	register("10a", day10a)
	register("10b", day10b)
}

type chipTarget struct {
	output bool // else a bot
	id     int
}

type botRule struct {
	low, high chipTarget
}

type botFactory struct {
	rules   map[int]botRule
	inputs  []chipInput
	holding map[int][]int
	outputs map[int][]int
}

type chipInput struct {
	value, bot int
}

func parseChipTarget(kind string, id int) (chipTarget, error) {
	switch kind {
	case "bot":
		return chipTarget{id: id}, nil
	case "output":
		return chipTarget{output: true, id: id}, nil
	}
	return chipTarget{}, fmt.Errorf("bad target %q", kind)
}

func parseBotFactory(s string) (*botFactory, error) {
	f := &botFactory{
		rules:   make(map[int]botRule),
		holding: make(map[int][]int),
		outputs: make(map[int][]int),
	}
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, "value ") {
			var in chipInput
			if _, err := fmt.Sscanf(line, "value %d goes to bot %d", &in.value, &in.bot); err != nil {
				return nil, fmt.Errorf("bad line %q: %s", line, err)
			}
			f.inputs = append(f.inputs, in)
			continue
		}
		var (
			bot               int
			lowKind, highKind string
			lowID, highID     int
		)
		if _, err := fmt.Sscanf(line, "bot %d gives low to %s %d and high to %s %d",
			&bot, &lowKind, &lowID, &highKind, &highID); err != nil {
			return nil, fmt.Errorf("bad line %q: %s", line, err)
		}
		if _, ok := f.rules[bot]; ok {
			return nil, fmt.Errorf("duplicate rule for bot %d", bot)
		}
		var rule botRule
		var err error
		if rule.low, err = parseChipTarget(lowKind, lowID); err != nil {
			return nil, fmt.Errorf("bad line %q: %s", line, err)
		}
		if rule.high, err = parseChipTarget(highKind, highID); err != nil {
			return nil, fmt.Errorf("bad line %q: %s", line, err)
		}
		f.rules[bot] = rule
	}
	return f, nil
}

// run distributes chips until no bot holds two. compare is called each time
// a bot compares a pair of chips.
func (f *botFactory) run(compare func(bot, low, high int)) error {
	var ready []int
	give := func(t chipTarget, v int) {
		if t.output {
			f.outputs[t.id] = append(f.outputs[t.id], v)
			return
		}
		f.holding[t.id] = append(f.holding[t.id], v)
		if len(f.holding[t.id]) == 2 {
			ready = append(ready, t.id)
		}
	}
	for _, in := range f.inputs {
		give(chipTarget{id: in.bot}, in.value)
	}
	for len(ready) > 0 {
		bot := ready[0]
		ready = ready[1:]
		chips := f.holding[bot]
		if len(chips) != 2 {
			return fmt.Errorf("bot %d holds %d chips", bot, len(chips))
		}
		rule, ok := f.rules[bot]
		if !ok {
			return fmt.Errorf("bot %d has two chips and no rule", bot)
		}
		low, high := chips[0], chips[1]
		if low > high {
			low, high = high, low
		}
		f.holding[bot] = nil
		compare(bot, low, high)
		give(rule.low, low)
		give(rule.high, high)
	}
	return nil
}

func findComparingBot(input string, a, b int) (int, error) {
	f, err := parseBotFactory(input)
	if err != nil {
		return 0, err
	}
	if a > b {
		a, b = b, a
	}
	found := -1
	err = f.run(func(bot, low, high int) {
		if low == a && high == b && found < 0 {
			found = bot
		}
	})
	if err != nil {
		return 0, err
	}
	if found < 0 {
		return 0, fmt.Errorf("no bot compares %d and %d", a, b)
	}
	return found, nil
}

func outputProduct(input string, outputs ...int) (int, error) {
	f, err := parseBotFactory(input)
	if err != nil {
		return 0, err
	}
	if err := f.run(func(int, int, int) {}); err != nil {
		return 0, err
	}
	product := 1
	for _, id := range outputs {
		chips := f.outputs[id]
		if len(chips) != 1 {
			return 0, fmt.Errorf("output %d holds %d chips", id, len(chips))
		}
		product *= chips[0]
	}
	return product, nil
}

func day10a(input string) (any, error) {
	return findComparingBot(input, 61, 17)
}

func day10b(input string) (any, error) {
	return outputProduct(input, 0, 1, 2)
}
