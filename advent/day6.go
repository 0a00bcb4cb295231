package main

import (
	"fmt"
	"strings"
)

func init() {
	register("6a", day6a)
	register("6b", day6b)
}

// correctMessage picks one letter per column: the most common one, or the
// least common one if leastCommon is set. Ties go to the earlier letter.
func correctMessage(input string, leastCommon bool) (string, error) {
	lines := strings.Split(input, "\n")
	width := len(lines[0])
	counts := make([][26]int, width)
	for _, line := range lines {
		if len(line) != width {
			return "", fmt.Errorf("line %q has length %d; want %d", line, len(line), width)
		}
		for i := 0; i < width; i++ {
			c := line[i]
			if c < 'a' || c > 'z' {
				return "", fmt.Errorf("bad character %q in line %q", c, line)
			}
			counts[i][c-'a']++
		}
	}
	msg := make([]byte, width)
	for i, col := range counts {
		best := -1
		for c, n := range col {
			if n == 0 {
				continue
			}
			if best < 0 || (leastCommon && n < col[best]) || (!leastCommon && n > col[best]) {
				best = c
			}
		}
		msg[i] = byte('a' + best)
	}
	return string(msg), nil
}

func day6a(input string) (any, error) {
	return correctMessage(input, false)
}

func day6b(input string) (any, error) {
	return correctMessage(input, true)
}
