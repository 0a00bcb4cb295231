package main

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/cespare/advent2016/compass"
	"github.com/cespare/advent2016/search"
)

func init() {
	register("13a", day13a)
	register("13b", day13b)
}

var cubicleStart = compass.Point{X: 1, Y: 1}

type cubicleMaze int // the office designer's favorite number

func parseCubicleMaze(s string) (cubicleMaze, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad favorite number %q", s)
	}
	return cubicleMaze(n), nil
}

func (m cubicleMaze) open(p compass.Point) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	x, y := p.X, p.Y
	v := x*x + 3*x + 2*x*y + y + y*y + int(m)
	return bits.OnesCount(uint(v))%2 == 0
}

func (m cubicleMaze) neighbors(p compass.Point) []compass.Point {
	var ns []compass.Point
	for _, q := range p.Neighbors4() {
		if m.open(q) {
			ns = append(ns, q)
		}
	}
	return ns
}

func day13a(input string) (any, error) {
	m, err := parseCubicleMaze(input)
	if err != nil {
		return nil, err
	}
	return search.Distance(cubicleStart, compass.Point{X: 31, Y: 39}, m.neighbors)
}

func day13b(input string) (any, error) {
	m, err := parseCubicleMaze(input)
	if err != nil {
		return nil, err
	}
	return len(search.Distances(cubicleStart, m.neighbors, 50)), nil
}
