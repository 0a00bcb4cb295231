package main

import (
	"fmt"
	"strings"
)

func init() {
	register("8a", day8a)
	register("8b", day8b)
}

type screenOpKind int

const (
	opRect screenOpKind = iota
	opRotateRow
	opRotateCol
)

type screenOp struct {
	kind screenOpKind
	a, b int // rect: width, height; rotate: index, amount
}

func parseScreenOp(s string) (screenOp, error) {
	var op screenOp
	var err error
	switch {
	case strings.HasPrefix(s, "rect "):
		op.kind = opRect
		_, err = fmt.Sscanf(s, "rect %dx%d", &op.a, &op.b)
	case strings.HasPrefix(s, "rotate row "):
		op.kind = opRotateRow
		_, err = fmt.Sscanf(s, "rotate row y=%d by %d", &op.a, &op.b)
	case strings.HasPrefix(s, "rotate column "):
		op.kind = opRotateCol
		_, err = fmt.Sscanf(s, "rotate column x=%d by %d", &op.a, &op.b)
	default:
		return op, fmt.Errorf("bad screen operation %q", s)
	}
	if err != nil {
		return op, fmt.Errorf("bad screen operation %q: %s", s, err)
	}
	return op, nil
}

type screen struct {
	w, h   int
	pixels [][]bool
}

func newScreen(w, h int) *screen {
	s := &screen{w: w, h: h, pixels: make([][]bool, h)}
	for y := range s.pixels {
		s.pixels[y] = make([]bool, w)
	}
	return s
}

func (s *screen) apply(op screenOp) error {
	switch op.kind {
	case opRect:
		if op.a < 0 || op.b < 0 || op.a > s.w || op.b > s.h {
			return fmt.Errorf("rect %dx%d does not fit on a %dx%d screen", op.a, op.b, s.w, s.h)
		}
		for y := 0; y < op.b; y++ {
			for x := 0; x < op.a; x++ {
				s.pixels[y][x] = true
			}
		}
	case opRotateRow:
		if op.a < 0 || op.a >= s.h {
			return fmt.Errorf("row %d out of range", op.a)
		}
		row := make([]bool, s.w)
		for x, v := range s.pixels[op.a] {
			row[((x+op.b)%s.w+s.w)%s.w] = v
		}
		s.pixels[op.a] = row
	case opRotateCol:
		if op.a < 0 || op.a >= s.w {
			return fmt.Errorf("column %d out of range", op.a)
		}
		col := make([]bool, s.h)
		for y := range s.pixels {
			col[((y+op.b)%s.h+s.h)%s.h] = s.pixels[y][op.a]
		}
		for y, v := range col {
			s.pixels[y][op.a] = v
		}
	}
	return nil
}

func (s *screen) lit() int {
	var n int
	for _, row := range s.pixels {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

func (s *screen) String() string {
	var b strings.Builder
	for y, row := range s.pixels {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func runScreen(input string, w, h int) (*screen, error) {
	s := newScreen(w, h)
	for _, line := range strings.Split(input, "\n") {
		op, err := parseScreenOp(line)
		if err != nil {
			return nil, err
		}
		if err := s.apply(op); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func day8a(input string) (any, error) {
	s, err := runScreen(input, 50, 6)
	if err != nil {
		return nil, err
	}
	return s.lit(), nil
}

func day8b(input string) (any, error) {
	s, err := runScreen(input, 50, 6)
	if err != nil {
		return nil, err
	}
	return "\n" + s.String(), nil
}
