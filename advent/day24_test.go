package main

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/cespare/advent2016/compass"
)

const ductSample = `###########
#0.1.....2#
#.#######.#
#4.......3#
###########`

func TestParseDuctMap(t *testing.T) {
	m, err := parseDuctMap(ductSample)
	if err != nil {
		t.Fatal(err)
	}
	want := []compass.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 9, Y: 1}, {X: 9, Y: 3}, {X: 1, Y: 3}}
	if len(m.points) != len(want) {
		t.Fatalf("got %d points; want %d", len(m.points), len(want))
	}
	for i, p := range want {
		if m.points[i] != p {
			t.Errorf("point %d: got %s; want %s", i, m.points[i], p)
		}
	}
	for _, s := range []string{"#0#0#", "#1.2#", "#0.x#", "#...#"} {
		if _, err := parseDuctMap(s); err == nil {
			t.Errorf("parseDuctMap(%q): got nil error", s)
		}
	}
}

func TestPairDistances(t *testing.T) {
	defer goleak.VerifyNone(t)

	m, err := parseDuctMap(ductSample)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{1, 3, 8} {
		dist, err := m.pairDistances(workers)
		if err != nil {
			t.Fatal(err)
		}
		for i := range dist {
			if dist[i][i] != 0 {
				t.Errorf("dist[%d][%d] = %d", i, i, dist[i][i])
			}
			for j := range dist {
				if dist[i][j] != dist[j][i] {
					t.Errorf("dist[%d][%d] = %d but dist[%d][%d] = %d", i, j, dist[i][j], j, i, dist[j][i])
				}
			}
		}
		if dist[0][4] != 2 || dist[0][2] != 8 {
			t.Errorf("workers=%d: got dist[0][4]=%d, dist[0][2]=%d; want 2, 8", workers, dist[0][4], dist[0][2])
		}
	}
}

func TestPairDistancesUnreachable(t *testing.T) {
	defer goleak.VerifyNone(t)

	m, err := parseDuctMap("#0.#2#\n#..#1#")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.pairDistances(2); err == nil {
		t.Error("walled-off point: got nil error")
	}
}

func TestDay24(t *testing.T) {
	defer goleak.VerifyNone(t)

	checkSolution(t, "24a", ductSample, 14)
	checkSolution(t, "24b", ductSample, 20)
}
