package main

import (
	"fmt"
)

func init() {
	register("18a", func(input string) (any, error) { return countSafeTiles(input, 40) })
	register("18b", func(input string) (any, error) { return countSafeTiles(input, 400000) })
}

// countSafeTiles counts the safe tiles in the first rows rows of the room.
// A tile is a trap exactly when its left and right parents differ
// (walls beyond the edges are safe).
func countSafeTiles(first string, rows int) (int, error) {
	row := make([]bool, len(first)) // true means trap
	for i := 0; i < len(first); i++ {
		switch first[i] {
		case '^':
			row[i] = true
		case '.':
		default:
			return 0, fmt.Errorf("bad tile %q", first[i])
		}
	}
	next := make([]bool, len(row))
	var safe int
	for r := 0; r < rows; r++ {
		for i, trap := range row {
			if !trap {
				safe++
			}
			left := i > 0 && row[i-1]
			right := i+1 < len(row) && row[i+1]
			next[i] = left != right
		}
		row, next = next, row
	}
	return safe, nil
}
