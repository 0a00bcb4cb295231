package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

func init() {
	register("20a", func(input string) (any, error) { return lowestAllowedIP(input, math.MaxUint32) })
	register("20b", func(input string) (any, error) { return countAllowedIPs(input, math.MaxUint32) })
}

type ipRange struct {
	lo, hi uint64 // inclusive
}

func parseBlocklist(s string) ([]ipRange, error) {
	var ranges []ipRange
	for _, line := range strings.Split(s, "\n") {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			return nil, fmt.Errorf("bad range %q", line)
		}
		lo, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad range %q: %s", line, err)
		}
		hi, err := strconv.ParseUint(b, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad range %q: %s", line, err)
		}
		if lo > hi {
			return nil, fmt.Errorf("bad range %q: start after end", line)
		}
		ranges = append(ranges, ipRange{lo, hi})
	}
	return ranges, nil
}

// mergeRanges sorts the ranges and joins overlapping or adjacent ones.
func mergeRanges(ranges []ipRange) []ipRange {
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].lo < ranges[j].lo })
	var merged []ipRange
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.lo <= merged[n-1].hi+1 {
			merged[n-1].hi = max(merged[n-1].hi, r.hi)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func lowestAllowedIP(input string, maxIP uint64) (uint64, error) {
	ranges, err := parseBlocklist(input)
	if err != nil {
		return 0, err
	}
	var ip uint64
	for _, r := range mergeRanges(ranges) {
		if r.lo > ip {
			break
		}
		ip = max(ip, r.hi+1)
	}
	if ip > maxIP {
		return 0, errors.New("every IP is blocked")
	}
	return ip, nil
}

func countAllowedIPs(input string, maxIP uint64) (uint64, error) {
	ranges, err := parseBlocklist(input)
	if err != nil {
		return 0, err
	}
	allowed := maxIP + 1
	for _, r := range mergeRanges(ranges) {
		if r.lo > maxIP {
			break
		}
		allowed -= min(r.hi, maxIP) - r.lo + 1
	}
	return allowed, nil
}
