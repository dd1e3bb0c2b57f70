package board

import (
	"fmt"
	"strings"
)

// FindPaths recomputes the path field with a breadth-first search seeded by
// every destination. It returns false when there is no destination or when a
// tile is left without a path.
//
// Tiles whose content blocks the path still receive a distance when reached,
// but the search does not continue through them.
func (b *Board) FindPaths() bool {
	b.queue = b.queue[:0]
	for _, t := range b.tiles {
		if t.content.Type() == ContentDestination {
			t.becomeDestination()
			b.queue = append(b.queue, t)
		} else {
			t.clearPath()
		}
	}
	if len(b.queue) == 0 {
		return false
	}

	for head := 0; head < len(b.queue); head++ {
		t := b.queue[head]
		if t.alternative {
			b.enqueue(t.growPathTo(t.neighbors[DirNorth], DirSouth))
			b.enqueue(t.growPathTo(t.neighbors[DirSouth], DirNorth))
			b.enqueue(t.growPathTo(t.neighbors[DirEast], DirWest))
			b.enqueue(t.growPathTo(t.neighbors[DirWest], DirEast))
		} else {
			b.enqueue(t.growPathTo(t.neighbors[DirWest], DirEast))
			b.enqueue(t.growPathTo(t.neighbors[DirEast], DirWest))
			b.enqueue(t.growPathTo(t.neighbors[DirSouth], DirNorth))
			b.enqueue(t.growPathTo(t.neighbors[DirNorth], DirSouth))
		}
	}

	for _, t := range b.tiles {
		if !t.HasPath() {
			return false
		}
	}
	return true
}

func (b *Board) enqueue(t *Tile) {
	if t != nil {
		b.queue = append(b.queue, t)
	}
}

// Layout symbols accepted by ApplyLayout.
const (
	LayoutEmpty       = '.'
	LayoutWall        = '#'
	LayoutDestination = 'D'
	LayoutSpawnPoint  = 'S'
	LayoutLaser       = 'L'
	LayoutMortar      = 'M'
)

// ApplyLayout replaces the board content from text rows, the first row being
// the northern edge. On error the board is left in its Clear state.
func (b *Board) ApplyLayout(rows []string) error {
	if len(rows) != b.h {
		return fmt.Errorf("board: layout has %d rows, want %d", len(rows), b.h)
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != b.w {
			return fmt.Errorf("board: layout row %d has %d columns, want %d", i, n, b.w)
		}
	}

	for _, t := range b.tiles {
		t.SetContent(b.factory.Get(ContentEmpty))
	}
	b.spawnPoints = b.spawnPoints[:0]
	b.updating = b.updating[:0]

	for i, row := range rows {
		y := b.h - 1 - i
		for x, r := range []rune(row) {
			t := b.TileAt(x, y)
			switch r {
			case LayoutEmpty:
			case LayoutWall:
				t.SetContent(b.factory.Get(ContentWall))
			case LayoutDestination:
				t.SetContent(b.factory.Get(ContentDestination))
			case LayoutSpawnPoint:
				t.SetContent(b.factory.Get(ContentSpawnPoint))
				b.spawnPoints = append(b.spawnPoints, t)
			case LayoutLaser, LayoutMortar:
				tt := TowerLaser
				if r == LayoutMortar {
					tt = TowerMortar
				}
				t.SetContent(b.factory.GetTower(tt))
				b.updating = append(b.updating, t.content)
			default:
				b.Clear()
				return fmt.Errorf("board: unknown layout symbol %q at (%d, %d)", r, x, y)
			}
		}
	}

	if len(b.spawnPoints) == 0 {
		b.Clear()
		return fmt.Errorf("board: layout has no spawn point")
	}
	if !b.FindPaths() {
		b.Clear()
		return ErrDisconnected
	}
	return nil
}

// Layout renders the board content in the format read by ApplyLayout.
func (b *Board) Layout() []string {
	rows := make([]string, b.h)
	for i := range rows {
		y := b.h - 1 - i
		var sb strings.Builder
		for x := 0; x < b.w; x++ {
			sb.WriteRune(layoutSymbol(b.TileAt(x, y).content))
		}
		rows[i] = sb.String()
	}
	return rows
}

func layoutSymbol(c *Content) rune {
	switch c.Type() {
	case ContentWall:
		return LayoutWall
	case ContentDestination:
		return LayoutDestination
	case ContentSpawnPoint:
		return LayoutSpawnPoint
	case ContentTower:
		if c.TowerType() == TowerMortar {
			return LayoutMortar
		}
		return LayoutLaser
	default:
		return LayoutEmpty
	}
}
