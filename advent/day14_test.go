package main

import "testing"

func TestTriplesAndQuintuples(t *testing.T) {
	if c, ok := firstTriple("ab777c888"); !ok || c != '7' {
		t.Errorf("firstTriple: got %c, %t; want 7, true", c, ok)
	}
	if _, ok := firstTriple("aabbaa"); ok {
		t.Error("firstTriple found a triple in aabbaa")
	}
	if !hasQuintuple("x999999y", '9') {
		t.Error("hasQuintuple missed 99999")
	}
	if hasQuintuple("9999x9", '9') {
		t.Error("hasQuintuple joined separate runs")
	}
}

func TestPadHasher(t *testing.T) {
	h := &padHasher{salt: "abc", stretch: 2016}
	if got, want := h.hash(0), "a107ff634856bb300138cac6568c0f24"; got != want {
		t.Errorf("stretched hash: got %s; want %s", got, want)
	}
}

func TestPadKeyIndex(t *testing.T) {
	if got := padKeyIndex("abc", 0, 1); got != 39 {
		t.Errorf("first key: got %d; want 39", got)
	}
	checkSolution(t, "14a", "abc", 22728)
	if testing.Short() {
		t.Skip("skipping stretched keys in short mode")
	}
	checkSolution(t, "14b", "abc", 22551)
}
