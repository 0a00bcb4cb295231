package main

import "testing"

func TestDragonChecksum(t *testing.T) {
	for _, tt := range []struct {
		seed   string
		length int
		want   string
	}{
		{"110010110100", 12, "100"},
		{"10000", 20, "01100"},
	} {
		got, err := dragonChecksum(tt.seed, tt.length)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("dragonChecksum(%q, %d): got %s; want %s", tt.seed, tt.length, got, tt.want)
		}
	}
	for _, s := range []string{"", "10201"} {
		if _, err := dragonChecksum(s, 20); err == nil {
			t.Errorf("dragonChecksum(%q): got nil error", s)
		}
	}
}
