package main

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

func init() {
	register("5a", day5a)
	register("5b", day5b)
}

// doorHashes calls fn with the hex digest of each door ID hash that starts
// with five zeros, in index order, until fn returns false.
func doorHashes(door string, fn func(digest string) bool) {
	buf := []byte(door)
	for i := 0; ; i++ {
		sum := md5.Sum(strconv.AppendInt(buf, int64(i), 10))
		if sum[0] != 0 || sum[1] != 0 || sum[2]&0xf0 != 0 {
			continue
		}
		if !fn(hex.EncodeToString(sum[:])) {
			return
		}
	}
}

func doorPassword(door string) string {
	var pw []byte
	doorHashes(door, func(digest string) bool {
		pw = append(pw, digest[5])
		vlogf("5a: %s", pw)
		return len(pw) < 8
	})
	return string(pw)
}

func positionalDoorPassword(door string) string {
	var pw [8]byte
	filled := 0
	doorHashes(door, func(digest string) bool {
		pos := int(digest[5] - '0')
		if pos < 0 || pos >= len(pw) || pw[pos] != 0 {
			return true
		}
		pw[pos] = digest[6]
		filled++
		vlogf("5b: position %d = %c", pos, digest[6])
		return filled < len(pw)
	})
	return string(pw[:])
}

func day5a(input string) (any, error) {
	return doorPassword(input), nil
}

func day5b(input string) (any, error) {
	return positionalDoorPassword(input), nil
}
