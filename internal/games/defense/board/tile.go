package board

import (
	"fmt"
	"math"
)

// Unreachable is the distance of a tile with no path to any destination.
const Unreachable = math.MaxInt

// Tile is one cell of the board.
type Tile struct {
	x, y        int
	pos         Point
	alternative bool
	neighbors   [4]*Tile

	content *Content

	distance  int
	next      *Tile
	exitDir   Direction
	exitPoint Point
}

func newTile(x, y int, pos Point) *Tile {
	return &Tile{
		x:           x,
		y:           y,
		pos:         pos,
		alternative: (x&1 == 0) != (y&1 == 0),
		distance:    Unreachable,
		exitDir:     DirNone,
	}
}

// MakeNeighbors links b as a's neighbor in direction dir, and a as b's
// neighbor in the opposite direction. Links are write-once.
func MakeNeighbors(a, b *Tile, dir Direction) {
	if dir == DirNone {
		panic("board: neighbor link needs a direction")
	}
	back := dir.Opposite()
	if a.neighbors[dir] != nil || b.neighbors[back] != nil {
		panic(fmt.Sprintf("board: redefined neighbors between (%d, %d) and (%d, %d)", a.x, a.y, b.x, b.y))
	}
	a.neighbors[dir] = b
	b.neighbors[back] = a
}

// MakeEastWestNeighbors links two horizontally adjacent tiles.
func MakeEastWestNeighbors(east, west *Tile) {
	MakeNeighbors(west, east, DirEast)
}

// MakeNorthSouthNeighbors links two vertically adjacent tiles.
func MakeNorthSouthNeighbors(north, south *Tile) {
	MakeNeighbors(south, north, DirNorth)
}

// Coord returns the grid coordinate.
func (t *Tile) Coord() (x, y int) { return t.x, t.y }

// Position returns the tile center on the board plane.
func (t *Tile) Position() Point { return t.pos }

// Alternative reports the checkerboard flag that selects traversal order.
func (t *Tile) Alternative() bool { return t.alternative }

// Neighbor returns the adjacent tile in direction d, or nil at the edge.
func (t *Tile) Neighbor(d Direction) *Tile {
	if d >= DirNone {
		return nil
	}
	return t.neighbors[d]
}

// Content returns the current occupant.
func (t *Tile) Content() *Content { return t.content }

// SetContent replaces the occupant, recycling the previous one first.
func (t *Tile) SetContent(c *Content) {
	if c == nil {
		panic("board: nil tile content")
	}
	if t.content != nil {
		t.content.Recycle()
	}
	t.content = c
	c.pos = t.pos
}

// Distance returns the number of steps to the nearest destination.
func (t *Tile) Distance() int { return t.distance }

// HasPath reports whether the tile reaches a destination.
func (t *Tile) HasPath() bool { return t.distance != Unreachable }

// IsDestination reports whether the tile holds a destination.
func (t *Tile) IsDestination() bool {
	return t.content != nil && t.content.typ == ContentDestination
}

// NextOnPath returns the next tile toward the nearest destination.
func (t *Tile) NextOnPath() *Tile { return t.next }

// ExitDirection returns the direction from this tile to NextOnPath.
func (t *Tile) ExitDirection() Direction { return t.exitDir }

// ExitPoint returns where an entity leaves this tile along its path.
func (t *Tile) ExitPoint() Point { return t.exitPoint }

func (t *Tile) clearPath() {
	t.distance = Unreachable
	t.next = nil
	t.exitDir = DirNone
	t.exitPoint = t.pos
}

func (t *Tile) becomeDestination() {
	t.distance = 0
	t.next = nil
	t.exitDir = DirNone
	t.exitPoint = t.pos
}

// growPathTo extends the path from t into n, which must step in dir to reach t.
// Returns n if the search may continue from it.
func (t *Tile) growPathTo(n *Tile, dir Direction) *Tile {
	if n == nil || n.HasPath() {
		return nil
	}
	n.distance = t.distance + 1
	n.next = t
	n.exitDir = dir
	n.exitPoint = n.pos.Add(dir.HalfVector())
	if n.content.BlocksPath() {
		return nil
	}
	return n
}

// PathState is the observable path state of a tile.
type PathState struct {
	Distance  int
	Next      *Tile
	Exit      Direction
	ExitPoint Point
}

// PathState returns a copy of the tile's path state.
func (t *Tile) PathState() PathState {
	return PathState{
		Distance:  t.distance,
		Next:      t.next,
		Exit:      t.exitDir,
		ExitPoint: t.exitPoint,
	}
}
