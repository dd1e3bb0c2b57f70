// Package board implements the tile grid, its content and the shortest-path
// field that enemies follow toward the destinations.
package board

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDisconnected is returned when a layout leaves tiles without a path.
var ErrDisconnected = errors.New("board: layout leaves tiles without a path to a destination")

// EditResult reports the outcome of a toggle operation.
type EditResult uint8

const (
	// EditIgnored means the tile's content does not take part in the toggle.
	EditIgnored EditResult = iota
	// EditApplied means the board changed.
	EditApplied
	// EditRejected means the edit was rolled back to keep every tile connected.
	EditRejected
)

// String returns a human-readable name for the result.
func (r EditResult) String() string {
	switch r {
	case EditApplied:
		return "applied"
	case EditRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Board is a W×H grid of tiles with a shortest-path field to its destinations.
type Board struct {
	w, h    int
	tiles   []*Tile
	factory *ContentFactory

	queue       []*Tile
	spawnPoints []*Tile
	updating    []*Content
}

// New builds a board and resets it with Clear.
func New(w, h int, factory *ContentFactory) *Board {
	if w <= 0 || h <= 0 || w*h < 2 {
		panic(fmt.Sprintf("board: invalid size %dx%d", w, h))
	}
	if factory == nil {
		factory = NewContentFactory(nil)
	}

	b := &Board{
		w:       w,
		h:       h,
		tiles:   make([]*Tile, w*h),
		factory: factory,
		queue:   make([]*Tile, 0, w*h),
	}

	offX := float64(w-1) * 0.5
	offY := float64(h-1) * 0.5
	for i, y := 0, 0; y < h; y++ {
		for x := 0; x < w; x, i = x+1, i+1 {
			t := newTile(x, y, Point{X: float64(x) - offX, Y: float64(y) - offY})
			b.tiles[i] = t
			if x > 0 {
				MakeEastWestNeighbors(t, b.tiles[i-1])
			}
			if y > 0 {
				MakeNorthSouthNeighbors(t, b.tiles[i-w])
			}
		}
	}

	b.Clear()
	return b
}

// Size returns the board dimensions.
func (b *Board) Size() (w, h int) { return b.w, b.h }

// Tiles returns all tiles in row-major order, south row first.
func (b *Board) Tiles() []*Tile { return b.tiles }

// Factory returns the content factory used by the board.
func (b *Board) Factory() *ContentFactory { return b.factory }

// TileAt returns the tile at grid coordinate (x, y), or nil if out of range.
func (b *Board) TileAt(x, y int) *Tile {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return nil
	}
	return b.tiles[y*b.w+x]
}

// SpawnPointCount returns the number of spawn points.
func (b *Board) SpawnPointCount() int { return len(b.spawnPoints) }

// SpawnPoint returns the i-th spawn point.
func (b *Board) SpawnPoint(i int) *Tile { return b.spawnPoints[i] }

// Towers returns the number of tower contents being updated.
func (b *Board) Towers() int { return len(b.updating) }

// Clear empties every tile, then places a destination in the center and a
// spawn point on the first tile.
func (b *Board) Clear() {
	for _, t := range b.tiles {
		t.SetContent(b.factory.Get(ContentEmpty))
	}
	b.spawnPoints = b.spawnPoints[:0]
	b.updating = b.updating[:0]
	b.ToggleDestination(b.tiles[len(b.tiles)/2])
	b.ToggleSpawnPoint(b.tiles[0])
}

// GameUpdate advances every tower on the board.
func (b *Board) GameUpdate(dt float64) {
	for _, c := range b.updating {
		c.GameUpdate(dt)
	}
}

// ToggleDestination turns an empty tile into a destination or back.
// Removing the last reachable destination is rejected.
func (b *Board) ToggleDestination(t *Tile) EditResult {
	switch t.content.Type() {
	case ContentDestination:
		t.SetContent(b.factory.Get(ContentEmpty))
		if !b.FindPaths() {
			t.SetContent(b.factory.Get(ContentDestination))
			b.FindPaths()
			return EditRejected
		}
		return EditApplied
	case ContentEmpty:
		t.SetContent(b.factory.Get(ContentDestination))
		b.FindPaths()
		return EditApplied
	}
	return EditIgnored
}

// ToggleWall places or removes a wall. Walls that would strand a tile are rejected.
func (b *Board) ToggleWall(t *Tile) EditResult {
	switch t.content.Type() {
	case ContentWall:
		t.SetContent(b.factory.Get(ContentEmpty))
		b.FindPaths()
		return EditApplied
	case ContentEmpty:
		t.SetContent(b.factory.Get(ContentWall))
		if !b.FindPaths() {
			t.SetContent(b.factory.Get(ContentEmpty))
			b.FindPaths()
			return EditRejected
		}
		return EditApplied
	}
	return EditIgnored
}

// ToggleTower places, replaces or removes a tower of the given type.
// Replacing a wall or another tower keeps the path field since both block.
func (b *Board) ToggleTower(t *Tile, tt TowerType) EditResult {
	switch t.content.Type() {
	case ContentTower:
		b.removeUpdating(t.content)
		if t.content.TowerType() == tt {
			t.SetContent(b.factory.Get(ContentEmpty))
			b.FindPaths()
			return EditApplied
		}
		t.SetContent(b.factory.GetTower(tt))
		b.updating = append(b.updating, t.content)
		return EditApplied
	case ContentEmpty:
		t.SetContent(b.factory.GetTower(tt))
		if !b.FindPaths() {
			t.SetContent(b.factory.Get(ContentEmpty))
			b.FindPaths()
			return EditRejected
		}
		b.updating = append(b.updating, t.content)
		return EditApplied
	case ContentWall:
		t.SetContent(b.factory.GetTower(tt))
		b.updating = append(b.updating, t.content)
		return EditApplied
	}
	return EditIgnored
}

// ToggleSpawnPoint adds or removes a spawn point. The last one cannot be removed.
func (b *Board) ToggleSpawnPoint(t *Tile) EditResult {
	switch t.content.Type() {
	case ContentSpawnPoint:
		if len(b.spawnPoints) <= 1 {
			return EditRejected
		}
		b.spawnPoints = slices.DeleteFunc(b.spawnPoints, func(s *Tile) bool { return s == t })
		t.SetContent(b.factory.Get(ContentEmpty))
		b.FindPaths()
		return EditApplied
	case ContentEmpty:
		t.SetContent(b.factory.Get(ContentSpawnPoint))
		b.spawnPoints = append(b.spawnPoints, t)
		b.FindPaths()
		return EditApplied
	}
	return EditIgnored
}

func (b *Board) removeUpdating(c *Content) {
	if i := slices.Index(b.updating, c); i >= 0 {
		last := len(b.updating) - 1
		b.updating[i] = b.updating[last]
		b.updating[last] = nil
		b.updating = b.updating[:last]
	}
}
