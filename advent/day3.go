package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("3a", day3a)
	register("3b", day3b)
}

func parseTriangles(s string) ([][3]int, error) {
	var rows [][3]int
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("bad triangle line %q", line)
		}
		var row [3]int
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("bad triangle line %q: %s", line, err)
			}
			row[i] = n
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validTriangle(a, b, c int) bool {
	return a+b > c && a+c > b && b+c > a
}

func day3a(input string) (any, error) {
	rows, err := parseTriangles(input)
	if err != nil {
		return nil, err
	}
	var n int
	for _, r := range rows {
		if validTriangle(r[0], r[1], r[2]) {
			n++
		}
	}
	return n, nil
}

func day3b(input string) (any, error) {
	rows, err := parseTriangles(input)
	if err != nil {
		return nil, err
	}
	if len(rows)%3 != 0 {
		return nil, fmt.Errorf("got %d rows; need a multiple of 3", len(rows))
	}
	var n int
	for i := 0; i < len(rows); i += 3 {
		for col := 0; col < 3; col++ {
			if validTriangle(rows[i][col], rows[i+1][col], rows[i+2][col]) {
				n++
			}
		}
	}
	return n, nil
}
