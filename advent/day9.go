package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func init() {
	register("9a", day9a)
	register("9b", day9b)
}

// decompressedLen returns the length of s after expanding (AxB) markers.
// If recursive is set, markers inside repeated sections are expanded too.
func decompressedLen(s string, recursive bool) (int, error) {
	var n int
	for len(s) > 0 {
		if s[0] != '(' {
			n++
			s = s[1:]
			continue
		}
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return 0, fmt.Errorf("unterminated marker at %q", s)
		}
		span, times, err := parseMarker(s[1:end])
		if err != nil {
			return 0, err
		}
		s = s[end+1:]
		if span > len(s) {
			return 0, fmt.Errorf("marker (%dx%d) runs past the end of the input", span, times)
		}
		sub := span
		if recursive {
			if sub, err = decompressedLen(s[:span], true); err != nil {
				return 0, err
			}
		}
		n += sub * times
		s = s[span:]
	}
	return n, nil
}

func parseMarker(s string) (span, times int, err error) {
	a, b, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad marker %q", s)
	}
	if span, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("bad marker %q", s)
	}
	if times, err = strconv.Atoi(b); err != nil {
		return 0, 0, fmt.Errorf("bad marker %q", s)
	}
	if span < 0 || times < 0 {
		return 0, 0, fmt.Errorf("bad marker %q", s)
	}
	return span, times, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func day9a(input string) (any, error) {
	return decompressedLen(stripSpace(input), false)
}

func day9b(input string) (any, error) {
	return decompressedLen(stripSpace(input), true)
}
