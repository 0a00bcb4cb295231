// Package search implements best-first and breadth-first search over
// implicit graphs.
//
// States must be comparable so that they can be recorded in a visited set;
// callers whose natural state contains slices or maps should canonicalize it
// into a comparable key (an array, a struct of arrays, or a string) first.
package search

import (
	"errors"

	"github.com/cespare/advent2016/paramheap"
)

// ErrNoSolution is returned when the frontier is exhausted without reaching
// a goal state.
var ErrNoSolution = errors.New("search: no solution reachable")

// A Problem describes an implicit graph to search.
type Problem[S comparable] struct {
	// Successors returns the legal states reachable from s in one step.
	Successors func(s S) []S
	// IsGoal reports whether s is a terminal state.
	IsGoal func(s S) bool
	// Priority orders the frontier; lower values are expanded first.
	// If nil, Uniform is used.
	//
	// BestFirst only returns a minimal step count if Priority is steps plus
	// an estimate that never overestimates the remaining steps.
	Priority func(steps int, s S) int
}

// Result reports the outcome of a successful search.
type Result struct {
	Steps    int // transitions from the start state to the goal
	Expanded int // states whose successors were generated
}

// Uniform is the priority function of uniform-cost search with unit edge
// costs. With Uniform, BestFirst is a breadth-first search.
func Uniform[S any](steps int, _ S) int { return steps }

// WithHeuristic returns a priority function that adds the estimate h(s) to
// the steps taken so far.
func WithHeuristic[S any](h func(S) int) func(int, S) int {
	return func(steps int, s S) int { return steps + h(s) }
}

type entry[S any] struct {
	state    S
	steps    int
	priority int
	seq      int // insertion order; breaks priority ties first-in first-out
}

func (e entry[S]) less(e1 entry[S]) bool {
	if e.priority != e1.priority {
		return e.priority < e1.priority
	}
	return e.seq < e1.seq
}

// BestFirst searches from start for a goal state, always expanding the
// frontier entry of lowest priority. A state is marked visited once it has
// been expanded and is never expanded again.
func BestFirst[S comparable](start S, p Problem[S]) (Result, error) {
	priority := p.Priority
	if priority == nil {
		priority = Uniform[S]
	}
	frontier := paramheap.New(entry[S].less)
	visited := make(map[S]struct{})
	var seq int
	push := func(s S, steps int) {
		frontier.Push(entry[S]{
			state:    s,
			steps:    steps,
			priority: priority(steps, s),
			seq:      seq,
		})
		seq++
	}

	push(start, 0)
	var expanded int
	for frontier.Len() > 0 {
		e := frontier.Pop()
		if _, ok := visited[e.state]; ok {
			continue
		}
		if p.IsGoal(e.state) {
			return Result{Steps: e.steps, Expanded: expanded}, nil
		}
		for _, next := range p.Successors(e.state) {
			if _, ok := visited[next]; !ok {
				push(next, e.steps+1)
			}
		}
		visited[e.state] = struct{}{}
		expanded++
	}
	return Result{Expanded: expanded}, ErrNoSolution
}

// Distance returns the minimum number of steps from start to goal.
func Distance[S comparable](start, goal S, neighbors func(S) []S) (int, error) {
	res, err := BestFirst(start, Problem[S]{
		Successors: neighbors,
		IsGoal:     func(s S) bool { return s == goal },
	})
	return res.Steps, err
}

// Distances returns the breadth-first distance from start to every state
// reachable in at most limit steps. A negative limit means no limit.
func Distances[S comparable](start S, neighbors func(S) []S, limit int) map[S]int {
	dist := map[S]int{start: 0}
	queue := []S{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		d := dist[s]
		if limit >= 0 && d >= limit {
			continue
		}
		for _, next := range neighbors(s) {
			if _, ok := dist[next]; ok {
				continue
			}
			dist[next] = d + 1
			queue = append(queue, next)
		}
	}
	return dist
}
