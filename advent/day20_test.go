package main

import (
	"testing"

	"github.com/kr/pretty"
)

const blocklistSample = `5-8
0-2
4-7`

func TestMergeRanges(t *testing.T) {
	ranges, err := parseBlocklist("5-8\n0-2\n4-7\n3-3\n10-12")
	if err != nil {
		t.Fatal(err)
	}
	got := mergeRanges(ranges)
	want := []ipRange{{0, 8}, {10, 12}}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("mergeRanges: %v", diff)
	}
}

func TestFirewall(t *testing.T) {
	lowest, err := lowestAllowedIP(blocklistSample, 9)
	if err != nil {
		t.Fatal(err)
	}
	if lowest != 3 {
		t.Errorf("lowest: got %d; want 3", lowest)
	}
	count, err := countAllowedIPs(blocklistSample, 9)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("count: got %d; want 2", count)
	}
	checkSolution(t, "20b", "0-4294967294", 1)
	checkSolution(t, "20a", "1-4294967295", 0)
	if _, err := lowestAllowedIP("0-4294967295", 4294967295); err == nil {
		t.Error("everything blocked: got nil error")
	}
	for _, s := range []string{"5", "8-5", "0-4294967296"} {
		if _, err := parseBlocklist(s); err == nil {
			t.Errorf("parseBlocklist(%q): got nil error", s)
		}
	}
}
