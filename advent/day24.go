package main

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/cespare/wait"

	"github.com/cespare/advent2016/compass"
	"github.com/cespare/advent2016/search"
)

func init() {
	register("24a", func(input string) (any, error) { return shortestDuctRoute(input, false) })
	register("24b", func(input string) (any, error) { return shortestDuctRoute(input, true) })
}

// A ductMap is the air duct layout. Y grows downward from the first row.
type ductMap struct {
	rows   []string
	points []compass.Point // indexed by the digit marking them
}

func parseDuctMap(s string) (*ductMap, error) {
	m := &ductMap{rows: strings.Split(s, "\n")}
	found := make(map[int]compass.Point)
	for y, row := range m.rows {
		for x := 0; x < len(row); x++ {
			c := row[x]
			switch {
			case c == '#' || c == '.':
			case c >= '0' && c <= '9':
				d := int(c - '0')
				if _, ok := found[d]; ok {
					return nil, fmt.Errorf("point %d appears twice", d)
				}
				found[d] = compass.Point{X: x, Y: y}
			default:
				return nil, fmt.Errorf("bad map character %q at (%d, %d)", c, x, y)
			}
		}
	}
	for d := 0; d < len(found); d++ {
		p, ok := found[d]
		if !ok {
			return nil, fmt.Errorf("points are not numbered 0-%d", len(found)-1)
		}
		m.points = append(m.points, p)
	}
	if len(m.points) == 0 {
		return nil, fmt.Errorf("no starting point 0")
	}
	return m, nil
}

func (m *ductMap) open(p compass.Point) bool {
	if p.Y < 0 || p.Y >= len(m.rows) || p.X < 0 || p.X >= len(m.rows[p.Y]) {
		return false
	}
	return m.rows[p.Y][p.X] != '#'
}

func (m *ductMap) neighbors(p compass.Point) []compass.Point {
	var ns []compass.Point
	for _, q := range p.Neighbors4() {
		if m.open(q) {
			ns = append(ns, q)
		}
	}
	return ns
}

// pairDistances returns dist[i][j], the number of steps between points i
// and j. The breadth-first searches from each point run on workers
// goroutines.
func (m *ductMap) pairDistances(workers int) ([][]int, error) {
	n := len(m.points)
	dist := make([][]int, n)
	work := make(chan int)
	var wg wait.Group
	for i := 0; i < workers; i++ {
		wg.Go(func(quit <-chan struct{}) error {
			for {
				select {
				case <-quit:
					return nil
				case src, ok := <-work:
					if !ok {
						return nil
					}
					d := search.Distances(m.points[src], m.neighbors, -1)
					row := make([]int, n)
					for j, p := range m.points {
						steps, ok := d[p]
						if !ok {
							return fmt.Errorf("point %d cannot reach point %d", src, j)
						}
						row[j] = steps
					}
					dist[src] = row
				}
			}
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		for i := 0; i < n; i++ {
			select {
			case work <- i:
			case <-quit:
				return nil
			}
		}
		close(work)
		return nil
	})
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return dist, nil
}

// shortestRoute tries every order of visiting points 1..n-1 from point 0.
func shortestRoute(dist [][]int, returnHome bool) int {
	order := make([]int, len(dist)-1)
	for i := range order {
		order[i] = i + 1
	}
	best := math.MaxInt
	for {
		steps, prev := 0, 0
		for _, p := range order {
			steps += dist[prev][p]
			prev = p
		}
		if returnHome {
			steps += dist[prev][0]
		}
		best = min(best, steps)
		if !nextPermutation(order) {
			return best
		}
	}
}

func shortestDuctRoute(input string, returnHome bool) (int, error) {
	m, err := parseDuctMap(input)
	if err != nil {
		return 0, err
	}
	dist, err := m.pairDistances(runtime.GOMAXPROCS(0))
	if err != nil {
		return 0, err
	}
	return shortestRoute(dist, returnHome), nil
}
