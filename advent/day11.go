package main

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/cespare/advent2016/search"
)

func init() {
	register("11a", day11a)
	register("11b", day11b)
}

const rtgFloors = 4

type rtgKind int

const (
	rtgGenerator rtgKind = iota
	rtgMicrochip
)

type rtgItem struct {
	Element string
	Kind    rtgKind
}

// An rtgFacility is the parsed puzzle: the items on each floor, bottom first.
type rtgFacility struct {
	Floors [rtgFloors][]rtgItem
}

var (
	rtgFloorRE    = regexp.MustCompile(`^The (\w+) floor contains (.*)\.$`)
	rtgItemRE     = regexp.MustCompile(`(\w+)(?:-compatible)? (generator|microchip)`)
	rtgFloorNames = map[string]int{"first": 0, "second": 1, "third": 2, "fourth": 3}
)

func parseFacility(s string) (rtgFacility, error) {
	var f rtgFacility
	seen := make(map[int]bool)
	for _, line := range strings.Split(s, "\n") {
		m := rtgFloorRE.FindStringSubmatch(line)
		if m == nil {
			return f, fmt.Errorf("bad floor description %q", line)
		}
		floor, ok := rtgFloorNames[m[1]]
		if !ok {
			return f, fmt.Errorf("unknown floor %q", m[1])
		}
		if seen[floor] {
			return f, fmt.Errorf("%s floor described twice", m[1])
		}
		seen[floor] = true
		for _, im := range rtgItemRE.FindAllStringSubmatch(m[2], -1) {
			item := rtgItem{Element: im[1], Kind: rtgGenerator}
			if im[2] == "microchip" {
				item.Kind = rtgMicrochip
			}
			f.Floors[floor] = append(f.Floors[floor], item)
		}
	}
	return f, nil
}

const rtgMaxPairs = 10

type rtgPair struct {
	gen, chip int8 // floors
}

// An rtgState is a canonical facility configuration. Elements are
// interchangeable, so only the sorted list of (generator floor, chip floor)
// pairs matters.
type rtgState struct {
	elevator int8
	n        int8
	pairs    [rtgMaxPairs]rtgPair
}

func (f rtgFacility) state() (rtgState, error) {
	var s rtgState
	type floors struct{ gen, chip int8 }
	elems := make(map[string]*floors)
	var order []string
	for floor, items := range f.Floors {
		for _, item := range items {
			e, ok := elems[item.Element]
			if !ok {
				e = &floors{-1, -1}
				elems[item.Element] = e
				order = append(order, item.Element)
			}
			p := &e.gen
			if item.Kind == rtgMicrochip {
				p = &e.chip
			}
			if *p >= 0 {
				return s, fmt.Errorf("duplicate %s item", item.Element)
			}
			*p = int8(floor)
		}
	}
	if len(order) > rtgMaxPairs {
		return s, fmt.Errorf("too many elements (%d > %d)", len(order), rtgMaxPairs)
	}
	for _, name := range order {
		e := elems[name]
		if e.gen < 0 || e.chip < 0 {
			return s, fmt.Errorf("element %s needs both a generator and a microchip", name)
		}
		s.pairs[s.n] = rtgPair{e.gen, e.chip}
		s.n++
	}
	s.canonicalize()
	if !s.safe() {
		return s, fmt.Errorf("starting configuration fries a microchip")
	}
	return s, nil
}

func (s *rtgState) canonicalize() {
	ps := s.pairs[:s.n]
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].gen != ps[j].gen {
			return ps[i].gen < ps[j].gen
		}
		return ps[i].chip < ps[j].chip
	})
}

// safe reports whether no microchip shares a floor with a foreign generator
// while its own generator is elsewhere.
func (s rtgState) safe() bool {
	var hasGen [rtgFloors]bool
	for _, p := range s.pairs[:s.n] {
		hasGen[p.gen] = true
	}
	for _, p := range s.pairs[:s.n] {
		if p.chip != p.gen && hasGen[p.chip] {
			return false
		}
	}
	return true
}

func (s rtgState) done() bool {
	if s.elevator != rtgFloors-1 {
		return false
	}
	for _, p := range s.pairs[:s.n] {
		if p.gen != rtgFloors-1 || p.chip != rtgFloors-1 {
			return false
		}
	}
	return true
}

type rtgRef struct {
	pair int
	chip bool
}

func (s rtgState) move(to int8, refs ...rtgRef) rtgState {
	for _, r := range refs {
		if r.chip {
			s.pairs[r.pair].chip = to
		} else {
			s.pairs[r.pair].gen = to
		}
	}
	s.elevator = to
	s.canonicalize()
	return s
}

// successors returns the safe states reachable by carrying one or two items
// one floor up or down.
func (s rtgState) successors() []rtgState {
	var refs []rtgRef
	for i, p := range s.pairs[:s.n] {
		if p.gen == s.elevator {
			refs = append(refs, rtgRef{i, false})
		}
		if p.chip == s.elevator {
			refs = append(refs, rtgRef{i, true})
		}
	}
	var next []rtgState
	for _, to := range [2]int8{s.elevator - 1, s.elevator + 1} {
		if to < 0 || to >= rtgFloors {
			continue
		}
		for i, r0 := range refs {
			if n := s.move(to, r0); n.safe() {
				next = append(next, n)
			}
			for _, r1 := range refs[i+1:] {
				if n := s.move(to, r0, r1); n.safe() {
					next = append(next, n)
				}
			}
		}
	}
	return next
}

// rtgTunedHeuristic weights each item by its distance from the top floor.
// It is not admissible: it finds the puzzle inputs' answers much faster but
// may overshoot the minimum on other configurations.
func rtgTunedHeuristic(s rtgState) int {
	var h int
	for _, p := range s.pairs[:s.n] {
		h += rtgFloors - 1 - int(p.gen)
		h += rtgFloors - 1 - int(p.chip)
	}
	return 4 * h
}

// minElevatorSteps finds the fewest elevator moves that bring every item to
// the top floor. If tuned is set, the search uses rtgTunedHeuristic and the
// result is not guaranteed to be minimal.
func minElevatorSteps(f rtgFacility, tuned bool) (int, error) {
	start, err := f.state()
	if err != nil {
		return 0, err
	}
	p := search.Problem[rtgState]{
		Successors: rtgState.successors,
		IsGoal:     rtgState.done,
	}
	if tuned {
		p.Priority = search.WithHeuristic(rtgTunedHeuristic)
	}
	res, err := search.BestFirst(start, p)
	if err != nil {
		return 0, err
	}
	vlogf("11: %d steps; expanded %s states", res.Steps, humanize.Comma(int64(res.Expanded)))
	return res.Steps, nil
}

// tunedElevator selects rtgTunedHeuristic for 11a and 11b (the -tuned flag).
var tunedElevator bool

func day11a(input string) (any, error) {
	f, err := parseFacility(input)
	if err != nil {
		return nil, err
	}
	return minElevatorSteps(f, tunedElevator)
}

func day11b(input string) (any, error) {
	f, err := parseFacility(input)
	if err != nil {
		return nil, err
	}
	for _, elem := range []string{"elerium", "dilithium"} {
		f.Floors[0] = append(f.Floors[0],
			rtgItem{Element: elem, Kind: rtgGenerator},
			rtgItem{Element: elem, Kind: rtgMicrochip},
		)
	}
	return minElevatorSteps(f, tunedElevator)
}
