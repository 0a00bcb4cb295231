package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/advent2016/compass"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

type walkStep struct {
	turn compass.Turn
	n    int
}

func parseWalk(s string) ([]walkStep, error) {
	var steps []walkStep
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if len(tok) < 2 {
			return nil, fmt.Errorf("bad step %q", tok)
		}
		var step walkStep
		switch tok[0] {
		case 'L':
			step.turn = compass.Left
		case 'R':
			step.turn = compass.Right
		default:
			return nil, fmt.Errorf("bad turn in step %q", tok)
		}
		n, err := strconv.Atoi(tok[1:])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad step count in %q", tok)
		}
		step.n = n
		steps = append(steps, step)
	}
	return steps, nil
}

func day1a(input string) (any, error) {
	steps, err := parseWalk(input)
	if err != nil {
		return nil, err
	}
	var p compass.Point
	d := compass.North
	for _, step := range steps {
		d = d.Turn(step.turn)
		p = p.MoveN(d, step.n)
	}
	return p.ManhattanDist(compass.Point{}), nil
}

func day1b(input string) (any, error) {
	steps, err := parseWalk(input)
	if err != nil {
		return nil, err
	}
	var p compass.Point
	d := compass.North
	seen := map[compass.Point]bool{p: true}
	for _, step := range steps {
		d = d.Turn(step.turn)
		for i := 0; i < step.n; i++ {
			p = p.Move(d)
			if seen[p] {
				return p.ManhattanDist(compass.Point{}), nil
			}
			seen[p] = true
		}
	}
	return nil, errors.New("no location visited twice")
}
