package main

import (
	"crypto/md5"
	"errors"

	"github.com/cespare/advent2016/compass"
	"github.com/cespare/advent2016/search"
)

func init() {
	register("17a", func(input string) (any, error) { return shortestVaultPath(input) })
	register("17b", func(input string) (any, error) { return longestVaultPath(input) })
}

const vaultSize = 4

// Rooms are addressed with Y growing downward from the top-left room.
var (
	vaultStart = compass.Point{X: 0, Y: 0}
	vaultEnd   = compass.Point{X: vaultSize - 1, Y: vaultSize - 1}
	vaultDoors = [4]struct {
		name  byte
		delta compass.Point
	}{
		{'U', compass.Point{X: 0, Y: -1}},
		{'D', compass.Point{X: 0, Y: 1}},
		{'L', compass.Point{X: -1, Y: 0}},
		{'R', compass.Point{X: 1, Y: 0}},
	}
)

type vaultState struct {
	pos  compass.Point
	path string
}

func inVault(p compass.Point) bool {
	return p.X >= 0 && p.X < vaultSize && p.Y >= 0 && p.Y < vaultSize
}

func vaultMoves(passcode string, s vaultState) []vaultState {
	if s.pos == vaultEnd {
		return nil
	}
	sum := md5.Sum([]byte(passcode + s.path))
	var next []vaultState
	for i, door := range vaultDoors {
		nibble := sum[i/2] >> 4
		if i%2 == 1 {
			nibble = sum[i/2] & 0xf
		}
		if nibble <= 0xa {
			continue
		}
		p := s.pos.Add(door.delta)
		if !inVault(p) {
			continue
		}
		next = append(next, vaultState{p, s.path + string(door.name)})
	}
	return next
}

var errNoVaultPath = errors.New("no path to the vault")

func shortestVaultPath(passcode string) (string, error) {
	var found vaultState
	_, err := search.BestFirst(vaultState{pos: vaultStart}, search.Problem[vaultState]{
		Successors: func(s vaultState) []vaultState { return vaultMoves(passcode, s) },
		IsGoal: func(s vaultState) bool {
			if s.pos != vaultEnd {
				return false
			}
			found = s
			return true
		},
	})
	if err == search.ErrNoSolution {
		return "", errNoVaultPath
	}
	return found.path, err
}

func longestVaultPath(passcode string) (int, error) {
	longest := -1
	var walk func(s vaultState)
	walk = func(s vaultState) {
		if s.pos == vaultEnd {
			longest = max(longest, len(s.path))
			return
		}
		for _, next := range vaultMoves(passcode, s) {
			walk(next)
		}
	}
	walk(vaultState{pos: vaultStart})
	if longest < 0 {
		return 0, errNoVaultPath
	}
	return longest, nil
}
