package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/cespare/advent2016/compass"
	"github.com/cespare/advent2016/search"
)

func init() {
	register("22a", day22a)
	register("22b", day22b)
}

type storageNode struct {
	pos               compass.Point
	size, used, avail int
}

// parseStorageGrid reads df output. Lines that do not describe a grid node
// (the prompt and the column headers) are skipped.
func parseStorageGrid(s string) ([]storageNode, error) {
	var nodes []storageNode
	for _, line := range strings.Split(s, "\n") {
		if !strings.HasPrefix(line, "/dev/grid/") {
			continue
		}
		var n storageNode
		var pct int
		_, err := fmt.Sscanf(line, "/dev/grid/node-x%d-y%d %dT %dT %dT %d%%",
			&n.pos.X, &n.pos.Y, &n.size, &n.used, &n.avail, &pct)
		if err != nil {
			return nil, fmt.Errorf("bad node %q: %s", line, err)
		}
		if n.used+n.avail != n.size {
			return nil, fmt.Errorf("node %s: used %d + avail %d != size %d", n.pos, n.used, n.avail, n.size)
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no grid nodes")
	}
	return nodes, nil
}

func viablePairs(nodes []storageNode) int {
	var n int
	for i, a := range nodes {
		if a.used == 0 {
			continue
		}
		for j, b := range nodes {
			if i != j && a.used <= b.avail {
				n++
			}
		}
	}
	return n
}

// A storageState is the position of the single empty node and the node
// currently holding the goal data. All other data only ever moves into the
// empty node, so these two positions determine the grid.
type storageState struct {
	empty, goal compass.Point
}

type storageGrid struct {
	walls  map[compass.Point]bool // nodes whose data fits nowhere
	width  int
	height int
}

func newStorageGrid(nodes []storageNode) (*storageGrid, storageState, error) {
	g := &storageGrid{walls: make(map[compass.Point]bool)}
	var start storageState
	var empty *storageNode
	for i, n := range nodes {
		g.width = max(g.width, n.pos.X+1)
		g.height = max(g.height, n.pos.Y+1)
		if n.used == 0 {
			if empty != nil {
				return nil, start, fmt.Errorf("more than one empty node (%s, %s)", empty.pos, n.pos)
			}
			empty = &nodes[i]
		}
	}
	if empty == nil {
		return nil, start, fmt.Errorf("no empty node")
	}
	for _, n := range nodes {
		if n.used > empty.size {
			g.walls[n.pos] = true
		}
	}
	start.empty = empty.pos
	start.goal = compass.Point{X: g.width - 1, Y: 0}
	if g.walls[start.goal] {
		return nil, start, fmt.Errorf("goal data at %s cannot move", start.goal)
	}
	return g, start, nil
}

func (g *storageGrid) inside(p compass.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// moves returns the states after moving one neighbor's data into the empty
// node.
func (g *storageGrid) moves(s storageState) []storageState {
	var next []storageState
	for _, p := range s.empty.Neighbors4() {
		if !g.inside(p) || g.walls[p] {
			continue
		}
		n := storageState{empty: p, goal: s.goal}
		if p == s.goal {
			n.goal = s.empty
		}
		next = append(next, n)
	}
	return next
}

// storageHeuristic never overestimates: every step the goal data takes is
// its own move, and before the first one the empty node has to reach it.
func storageHeuristic(s storageState) int {
	h := s.goal.ManhattanDist(compass.Point{})
	if h > 0 {
		h += max(0, s.empty.ManhattanDist(s.goal)-1)
	}
	return h
}

func day22a(input string) (any, error) {
	nodes, err := parseStorageGrid(input)
	if err != nil {
		return nil, err
	}
	return viablePairs(nodes), nil
}

func day22b(input string) (any, error) {
	nodes, err := parseStorageGrid(input)
	if err != nil {
		return nil, err
	}
	g, start, err := newStorageGrid(nodes)
	if err != nil {
		return nil, err
	}
	res, err := search.BestFirst(start, search.Problem[storageState]{
		Successors: g.moves,
		IsGoal:     func(s storageState) bool { return s.goal == compass.Point{} },
		Priority:   search.WithHeuristic(storageHeuristic),
	})
	if err != nil {
		return nil, err
	}
	vlogf("22b: expanded %s states", humanize.Comma(int64(res.Expanded)))
	return res.Steps, nil
}
