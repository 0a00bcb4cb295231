package main

import (
	"testing"

	"github.com/kr/pretty"
)

const screenSample = `rect 3x2
rotate column x=1 by 1
rotate row y=0 by 4
rotate column x=1 by 1`

func TestParseScreenOp(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want screenOp
	}{
		{"rect 3x2", screenOp{opRect, 3, 2}},
		{"rotate row y=0 by 4", screenOp{opRotateRow, 0, 4}},
		{"rotate column x=1 by 1", screenOp{opRotateCol, 1, 1}},
	} {
		got, err := parseScreenOp(tt.s)
		if err != nil {
			t.Fatal(err)
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("parseScreenOp(%q): %v", tt.s, diff)
		}
	}
	for _, s := range []string{"rect 3", "rotate diagonal x=1 by 2", "rect axb"} {
		if _, err := parseScreenOp(s); err == nil {
			t.Errorf("parseScreenOp(%q): got nil error", s)
		}
	}
}

func TestScreen(t *testing.T) {
	s, err := runScreen(screenSample, 7, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.lit(); got != 6 {
		t.Errorf("lit: got %d; want 6", got)
	}
	want := ".#..#.#\n#.#....\n.#....."
	if got := s.String(); got != want {
		t.Errorf("got screen\n%s\nwant\n%s", got, want)
	}
	for _, s := range []string{"rect 8x1", "rect -1x2", "rect 2x-1"} {
		if _, err := runScreen(s, 7, 3); err == nil {
			t.Errorf("runScreen(%q): got nil error", s)
		}
	}
}

func TestScreenNegativeRotate(t *testing.T) {
	for _, tt := range []struct {
		ops  string
		want string
	}{
		{"rect 1x1\nrotate row y=0 by -1", "......#\n.......\n......."},
		{"rect 1x1\nrotate column x=0 by -1", ".......\n.......\n#......"},
		{"rect 1x1\nrotate row y=0 by -8", "......#\n.......\n......."},
	} {
		s, err := runScreen(tt.ops, 7, 3)
		if err != nil {
			t.Fatalf("runScreen(%q): %s", tt.ops, err)
		}
		if got := s.String(); got != tt.want {
			t.Errorf("runScreen(%q): got\n%s\nwant\n%s", tt.ops, got, tt.want)
		}
	}
}
