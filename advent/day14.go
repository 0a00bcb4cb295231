package main

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

func init() {
	register("14a", func(input string) (any, error) { return padKeyIndex(input, 0, 64), nil })
	register("14b", func(input string) (any, error) { return padKeyIndex(input, 2016, 64), nil })
}

// A padHasher memoizes the (possibly stretched) hashes of salt+index.
type padHasher struct {
	salt    string
	stretch int
	hashes  []string
}

func (h *padHasher) hash(i int) string {
	for len(h.hashes) <= i {
		n := len(h.hashes)
		sum := md5.Sum(strconv.AppendInt([]byte(h.salt), int64(n), 10))
		var buf [2 * md5.Size]byte
		hex.Encode(buf[:], sum[:])
		for j := 0; j < h.stretch; j++ {
			sum = md5.Sum(buf[:])
			hex.Encode(buf[:], sum[:])
		}
		h.hashes = append(h.hashes, string(buf[:]))
	}
	return h.hashes[i]
}

// firstTriple returns the character of the first run of three in s.
func firstTriple(s string) (byte, bool) {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == s[i+1] && s[i] == s[i+2] {
			return s[i], true
		}
	}
	return 0, false
}

func hasQuintuple(s string, c byte) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			run = 0
			continue
		}
		run++
		if run == 5 {
			return true
		}
	}
	return false
}

// padKeyIndex returns the index that produces the nth key: an index whose
// hash contains a triple whose character appears five in a row in one of
// the next 1000 hashes.
func padKeyIndex(salt string, stretch, n int) int {
	h := &padHasher{salt: salt, stretch: stretch}
	found := 0
	for i := 0; ; i++ {
		c, ok := firstTriple(h.hash(i))
		if !ok {
			continue
		}
		for j := i + 1; j <= i+1000; j++ {
			if hasQuintuple(h.hash(j), c) {
				found++
				vlogf("key %d at index %d", found, i)
				break
			}
		}
		if found == n {
			return i
		}
	}
}
