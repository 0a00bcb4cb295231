package main

import (
	"fmt"
	"strings"

	"github.com/cespare/advent2016/compass"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

// A keypad is laid out top row first; spaces are holes.
type keypad struct {
	rows  []string
	start compass.Point
}

var (
	squareKeypad = keypad{
		rows:  []string{"123", "456", "789"},
		start: compass.Point{X: 1, Y: 1},
	}
	diamondKeypad = keypad{
		rows: []string{
			"  1  ",
			" 234 ",
			"56789",
			" ABC ",
			"  D  ",
		},
		start: compass.Point{X: 0, Y: 2},
	}
)

// key returns the key at p, where Y counts up from the bottom row.
func (k keypad) key(p compass.Point) (byte, bool) {
	row := len(k.rows) - 1 - p.Y
	if row < 0 || row >= len(k.rows) || p.X < 0 || p.X >= len(k.rows[row]) {
		return 0, false
	}
	c := k.rows[row][p.X]
	return c, c != ' '
}

var keypadMoves = map[rune]compass.Direction{
	'U': compass.North,
	'D': compass.South,
	'L': compass.West,
	'R': compass.East,
}

func parseKeypadMoves(s string) ([][]compass.Direction, error) {
	var lines [][]compass.Direction
	for _, line := range strings.Split(s, "\n") {
		var moves []compass.Direction
		for _, c := range line {
			d, ok := keypadMoves[c]
			if !ok {
				return nil, fmt.Errorf("bad move %q in line %q", c, line)
			}
			moves = append(moves, d)
		}
		lines = append(lines, moves)
	}
	return lines, nil
}

func (k keypad) code(lines [][]compass.Direction) string {
	var b strings.Builder
	p := k.start
	for _, moves := range lines {
		for _, d := range moves {
			if _, ok := k.key(p.Move(d)); ok {
				p = p.Move(d)
			}
		}
		c, _ := k.key(p)
		b.WriteByte(c)
	}
	return b.String()
}

func day2a(input string) (any, error) {
	lines, err := parseKeypadMoves(input)
	if err != nil {
		return nil, err
	}
	return squareKeypad.code(lines), nil
}

func day2b(input string) (any, error) {
	lines, err := parseKeypadMoves(input)
	if err != nil {
		return nil, err
	}
	return diamondKeypad.code(lines), nil
}
