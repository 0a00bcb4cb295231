package compass

import "testing"

func TestTurn(t *testing.T) {
	for _, tt := range []struct {
		d    Direction
		t    Turn
		want Direction
	}{
		{North, Left, West},
		{North, Right, East},
		{South, Left, East},
		{South, Right, West},
		{East, Left, North},
		{East, Right, South},
		{West, Left, South},
		{West, Right, North},
	} {
		if got := tt.d.Turn(tt.t); got != tt.want {
			t.Errorf("%s.Turn(%s): got %s; want %s", tt.d, tt.t, got, tt.want)
		}
	}
}

func TestTurnInverse(t *testing.T) {
	for _, d := range Directions {
		if got := d.Turn(Left).Turn(Right); got != d {
			t.Errorf("%s left then right: got %s", d, got)
		}
		if got := d.Turn(Right).Turn(Left); got != d {
			t.Errorf("%s right then left: got %s", d, got)
		}
		got := d
		for i := 0; i < 4; i++ {
			got = got.Turn(Right)
		}
		if got != d {
			t.Errorf("%s after four right turns: got %s", d, got)
		}
	}
}

func TestMoveRoundTrip(t *testing.T) {
	points := []Point{{0, 0}, {3, -7}, {-100, 42}}
	for _, p := range points {
		for _, d := range Directions {
			for _, n := range []int{-5, -1, 0, 1, 2, 17} {
				q := p.MoveN(d, n).MoveN(d.Opposite(), n)
				if q != p {
					t.Errorf("%s moved %d %s and back: got %s", p, n, d, q)
				}
				if got, want := p.MoveN(d, n), p.MoveN(d.Opposite(), -n); got != want {
					t.Errorf("%s.MoveN(%s, %d) = %s; backward move gives %s", p, d, n, got, want)
				}
			}
		}
	}
}

func TestMove(t *testing.T) {
	var p Point
	p = p.Move(North).Move(South).Move(East).Move(West)
	if p != (Point{}) {
		t.Errorf("got %s; want origin", p)
	}
	if got, want := (Point{1, 1}).MoveN(North, 2), (Point{1, 3}); got != want {
		t.Errorf("got %s; want %s", got, want)
	}
	if got, want := (Point{1, 1}).MoveN(West, -2), (Point{3, 1}); got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestPointMapKey(t *testing.T) {
	seen := map[Point]bool{{1, 2}: true}
	if !seen[Point{X: 1, Y: 2}] {
		t.Error("structurally equal point not found in map")
	}
	if seen[Point{2, 1}] {
		t.Error("found transposed point in map")
	}
}

func TestManhattanDist(t *testing.T) {
	if got, want := (Point{0, 0}).ManhattanDist(Point{-3, 4}), 7; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestNeighbors(t *testing.T) {
	p := Point{5, 5}
	for _, n := range p.Neighbors4() {
		if d := p.ManhattanDist(n); d != 1 {
			t.Errorf("4-neighbor %s at distance %d", n, d)
		}
	}
	seen := make(map[Point]bool)
	for _, n := range p.Neighbors8() {
		if n == p || seen[n] {
			t.Errorf("bad 8-neighbor %s", n)
		}
		seen[n] = true
	}
}

func TestAdd(t *testing.T) {
	p := Point{X: 2, Y: -3}
	if got, want := p.Add(Point{X: -5, Y: 4}), (Point{X: -3, Y: 1}); got != want {
		t.Errorf("Add: got %s; want %s", got, want)
	}
	for _, d := range Directions {
		if got, want := p.Add(Point{}.Move(d)), p.Move(d); got != want {
			t.Errorf("Add(unit %s): got %s; want %s", d, got, want)
		}
	}
}
