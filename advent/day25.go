package main

import (
	"errors"
	"fmt"

	"github.com/cespare/advent2016/asm"
)

func init() {
	register("25a", day25a)
}

// clockOutputs is how many values of a clock signal are checked. The
// programs repeat with a period far shorter than this.
const clockOutputs = 100

// clockStepLimit bounds a single trial so that a seed that never outputs
// anything is rejected rather than run forever.
const clockStepLimit = 100_000_000

// emitsClock reports whether the program, started with a in register a,
// outputs 0, 1, 0, 1, ... for clockOutputs values.
func emitsClock(prog []asm.Insn, a int) (bool, error) {
	prog = append([]asm.Insn(nil), prog...)
	var n int
	ok := true
	m := &asm.Machine{
		Optimize: true,
		Limit:    clockStepLimit,
		Out: func(v int) bool {
			if v != n%2 {
				ok = false
				return false
			}
			n++
			return n < clockOutputs
		},
	}
	m.Regs[0] = a
	if err := m.Run(prog); err != nil {
		if errors.Is(err, asm.ErrStepLimit) {
			return false, nil
		}
		return false, err
	}
	return ok && n == clockOutputs, nil
}

func lowestClockSeed(input string, limit int) (int, error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return 0, err
	}
	for a := 1; a <= limit; a++ {
		ok, err := emitsClock(prog, a)
		if err != nil {
			return 0, err
		}
		if ok {
			return a, nil
		}
	}
	return 0, fmt.Errorf("no seed up to %d produces a clock signal", limit)
}

func day25a(input string) (any, error) {
	return lowestClockSeed(input, 1<<20)
}
