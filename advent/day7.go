package main

import (
	"fmt"
	"strings"
)

func init() {
	register("7a", day7a)
	register("7b", day7b)
}

// An ipv7 address split into the parts outside brackets (supernet) and
// inside them (hypernet).
type ipv7 struct {
	supernet []string
	hypernet []string
}

func parseIPv7(s string) (ipv7, error) {
	var ip ipv7
	rest := s
	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			if strings.IndexByte(rest, ']') >= 0 {
				return ip, fmt.Errorf("bad address %q", s)
			}
			ip.supernet = append(ip.supernet, rest)
			return ip, nil
		}
		end := strings.IndexByte(rest, ']')
		if end < open {
			return ip, fmt.Errorf("bad address %q", s)
		}
		ip.supernet = append(ip.supernet, rest[:open])
		ip.hypernet = append(ip.hypernet, rest[open+1:end])
		rest = rest[end+1:]
	}
}

func hasABBA(s string) bool {
	for i := 0; i+3 < len(s); i++ {
		if s[i] != s[i+1] && s[i] == s[i+3] && s[i+1] == s[i+2] {
			return true
		}
	}
	return false
}

func (ip ipv7) supportsTLS() bool {
	for _, h := range ip.hypernet {
		if hasABBA(h) {
			return false
		}
	}
	for _, s := range ip.supernet {
		if hasABBA(s) {
			return true
		}
	}
	return false
}

func (ip ipv7) supportsSSL() bool {
	for _, s := range ip.supernet {
		for i := 0; i+2 < len(s); i++ {
			if s[i] == s[i+1] || s[i] != s[i+2] {
				continue
			}
			bab := string([]byte{s[i+1], s[i], s[i+1]})
			for _, h := range ip.hypernet {
				if strings.Contains(h, bab) {
					return true
				}
			}
		}
	}
	return false
}

func countIPv7(input string, pred func(ipv7) bool) (int, error) {
	var n int
	for _, line := range strings.Split(input, "\n") {
		ip, err := parseIPv7(line)
		if err != nil {
			return 0, err
		}
		if pred(ip) {
			n++
		}
	}
	return n, nil
}

func day7a(input string) (any, error) {
	return countIPv7(input, ipv7.supportsTLS)
}

func day7b(input string) (any, error) {
	return countIPv7(input, ipv7.supportsSSL)
}
