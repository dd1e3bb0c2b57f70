package board

import "math"

// Point is a position on the board plane. Y grows toward the north.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p * k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the Euclidean length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Lerp interpolates between p and q by t in [0, 1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Direction is one of the four grid directions, or DirNone.
type Direction uint8

const (
	DirNorth Direction = iota
	DirEast
	DirSouth
	DirWest
	DirNone
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirNorth:
		return DirSouth
	case DirEast:
		return DirWest
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	default:
		return DirNone
	}
}

// HalfVector is the offset from a tile center to the middle of its edge in direction d.
func (d Direction) HalfVector() Point {
	switch d {
	case DirNorth:
		return Point{Y: 0.5}
	case DirEast:
		return Point{X: 0.5}
	case DirSouth:
		return Point{Y: -0.5}
	case DirWest:
		return Point{X: -0.5}
	default:
		return Point{}
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "North"
	case DirEast:
		return "East"
	case DirSouth:
		return "South"
	case DirWest:
		return "West"
	default:
		return "None"
	}
}
