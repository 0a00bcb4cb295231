// Package compass provides cardinal directions and integer grid points.
package compass

import "fmt"

// A Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four directions in clockwise order from North.
var Directions = [4]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// A Turn is a 90 degree rotation.
type Turn int

const (
	Left Turn = iota
	Right
)

func (t Turn) String() string {
	switch t {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}

// Turn returns the direction faced after turning d by t.
func (d Direction) Turn(t Turn) Direction {
	switch t {
	case Left:
		return (d + 3) % 4
	case Right:
		return (d + 1) % 4
	}
	panic(fmt.Sprintf("bad turn %d", t))
}

// Opposite returns the direction facing away from d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// A Point is a location on the integer grid.
// North is +Y and East is +X.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move returns the point one step from p in direction d.
func (p Point) Move(d Direction) Point {
	return p.MoveN(d, 1)
}

// MoveN returns the point n steps from p in direction d.
// A negative n moves backward.
func (p Point) MoveN(d Direction, n int) Point {
	switch d {
	case North:
		p.Y += n
	case South:
		p.Y -= n
	case East:
		p.X += n
	case West:
		p.X -= n
	default:
		panic(fmt.Sprintf("bad direction %d", d))
	}
	return p
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// ManhattanDist returns the taxicab distance between p and q.
func (p Point) ManhattanDist(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbors4 returns the orthogonally adjacent points in the order
// North, East, South, West.
func (p Point) Neighbors4() [4]Point {
	var ns [4]Point
	for i, d := range Directions {
		ns[i] = p.Move(d)
	}
	return ns
}

// Neighbors8 returns the orthogonally and diagonally adjacent points.
func (p Point) Neighbors8() [8]Point {
	return [8]Point{
		{p.X - 1, p.Y - 1},
		{p.X, p.Y - 1},
		{p.X + 1, p.Y - 1},
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X - 1, p.Y + 1},
		{p.X, p.Y + 1},
		{p.X + 1, p.Y + 1},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
