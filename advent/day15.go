package main

import (
	"fmt"
	"strings"
)

func init() {
	register("15a", day15a)
	register("15b", day15b)
}

type disc struct {
	positions int
	start     int // position at time 0
}

func parseDiscs(s string) ([]disc, error) {
	var discs []disc
	for i, line := range strings.Split(s, "\n") {
		var n int
		var d disc
		_, err := fmt.Sscanf(line, "Disc #%d has %d positions; at time=0, it is at position %d.", &n, &d.positions, &d.start)
		if err != nil {
			return nil, fmt.Errorf("bad disc %q: %s", line, err)
		}
		if n != i+1 {
			return nil, fmt.Errorf("disc %d out of order", n)
		}
		if d.positions <= 0 {
			return nil, fmt.Errorf("disc %d has no positions", n)
		}
		discs = append(discs, d)
	}
	return discs, nil
}

// firstCapsuleTime returns the first time at which a capsule dropped falls
// through every disc. Disc i (from 0) is reached at time t+i+1.
func firstCapsuleTime(discs []disc) int {
	t, step := 0, 1
	for i, d := range discs {
		for (d.start+t+i+1)%d.positions != 0 {
			t += step
		}
		step = lcm(step, d.positions)
	}
	return t
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

func day15a(input string) (any, error) {
	discs, err := parseDiscs(input)
	if err != nil {
		return nil, err
	}
	return firstCapsuleTime(discs), nil
}

func day15b(input string) (any, error) {
	discs, err := parseDiscs(input)
	if err != nil {
		return nil, err
	}
	discs = append(discs, disc{positions: 11})
	return firstCapsuleTime(discs), nil
}
