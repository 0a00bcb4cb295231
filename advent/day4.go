package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func init() {
	register("4a", day4a)
	register("4b", day4b)
}

type room struct {
	name     string // with dashes
	sector   int
	checksum string
}

func parseRoom(s string) (room, error) {
	var r room
	open := strings.IndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return r, fmt.Errorf("bad room %q", s)
	}
	r.checksum = s[open+1 : len(s)-1]
	dash := strings.LastIndexByte(s[:open], '-')
	if dash < 0 {
		return r, fmt.Errorf("bad room %q", s)
	}
	r.name = s[:dash]
	sector, err := strconv.Atoi(s[dash+1 : open])
	if err != nil {
		return r, fmt.Errorf("bad sector in room %q", s)
	}
	r.sector = sector
	return r, nil
}

func parseRooms(s string) ([]room, error) {
	var rooms []room
	for _, line := range strings.Split(s, "\n") {
		r, err := parseRoom(line)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

// real reports whether the checksum is the five most common letters of the
// name, ties broken alphabetically.
func (r room) real() bool {
	var counts [26]int
	for _, c := range r.name {
		if c >= 'a' && c <= 'z' {
			counts[c-'a']++
		}
	}
	var letters []byte
	for i, n := range counts {
		if n > 0 {
			letters = append(letters, byte('a'+i))
		}
	}
	sort.SliceStable(letters, func(i, j int) bool {
		return counts[letters[i]-'a'] > counts[letters[j]-'a']
	})
	if len(letters) > 5 {
		letters = letters[:5]
	}
	return string(letters) == r.checksum
}

func (r room) decrypt() string {
	b := []byte(r.name)
	shift := r.sector % 26
	for i, c := range b {
		if c == '-' {
			b[i] = ' '
			continue
		}
		b[i] = 'a' + (c-'a'+byte(shift))%26
	}
	return string(b)
}

func day4a(input string) (any, error) {
	rooms, err := parseRooms(input)
	if err != nil {
		return nil, err
	}
	var sum int
	for _, r := range rooms {
		if r.real() {
			sum += r.sector
		}
	}
	return sum, nil
}

func day4b(input string) (any, error) {
	rooms, err := parseRooms(input)
	if err != nil {
		return nil, err
	}
	for _, r := range rooms {
		if r.real() && strings.Contains(r.decrypt(), "northpole object") {
			return r.sector, nil
		}
	}
	return nil, errors.New("no north pole storage room")
}
