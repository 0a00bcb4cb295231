package main

import (
	"fmt"
	"strconv"
)

func init() {
	register("19a", func(input string) (any, error) { return elfParty(input, stealLeft) })
	register("19b", func(input string) (any, error) { return elfParty(input, stealAcross) })
}

func elfParty(input string, play func(int) int) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("bad elf count %q", input)
	}
	return play(n), nil
}

// An elfQueue is a FIFO of elf numbers.
type elfQueue struct {
	elves []int
	head  int
}

func (q *elfQueue) len() int     { return len(q.elves) - q.head }
func (q *elfQueue) push(elf int) { q.elves = append(q.elves, elf) }

func (q *elfQueue) pop() int {
	elf := q.elves[q.head]
	q.head++
	if q.head > 1024 && q.head > len(q.elves)/2 {
		q.elves = append(q.elves[:0], q.elves[q.head:]...)
		q.head = 0
	}
	return elf
}

// stealLeft returns the elf who ends up with all the presents when each elf
// in turn takes the presents of the elf to their left.
func stealLeft(n int) int {
	q := &elfQueue{elves: make([]int, 0, n)}
	for i := 1; i <= n; i++ {
		q.push(i)
	}
	for q.len() > 1 {
		q.push(q.pop())
		q.pop()
	}
	return q.pop()
}

// stealAcross is like stealLeft except that each elf takes the presents of
// the elf directly across the circle (the left one of two).
//
// The circle is a linked list of elves 0..n-1 and pre is the elf before the
// current victim. After each theft the victim moves one place around the
// circle if the count was even and two places if it was odd.
func stealAcross(n int) int {
	next := make([]int, n)
	for i := range next {
		next[i] = (i + 1) % n
	}
	pre := n/2 - 1
	if n == 1 {
		pre = 0
	}
	for count := n; count > 1; count-- {
		next[pre] = next[next[pre]]
		if count%2 == 1 {
			pre = next[pre]
		}
	}
	return pre + 1
}
