package board

import (
	"fmt"

	"github.com/vovakirdan/tui-defense/internal/games/defense/pool"
)

// ContentType tags what occupies a tile.
type ContentType uint8

const (
	ContentEmpty ContentType = iota
	ContentDestination
	ContentWall
	ContentSpawnPoint
	ContentTower
)

// String returns a human-readable name for the content type.
func (t ContentType) String() string {
	switch t {
	case ContentEmpty:
		return "Empty"
	case ContentDestination:
		return "Destination"
	case ContentWall:
		return "Wall"
	case ContentSpawnPoint:
		return "SpawnPoint"
	case ContentTower:
		return "Tower"
	default:
		return "Unknown"
	}
}

// TowerType is the subtype of a tower content.
type TowerType uint8

const (
	TowerLaser TowerType = iota
	TowerMortar
)

// String returns a human-readable name for the tower type.
func (t TowerType) String() string {
	switch t {
	case TowerLaser:
		return "Laser"
	case TowerMortar:
		return "Mortar"
	default:
		return "Unknown"
	}
}

// Updater is the per-tick behavior attached to tower content.
type Updater interface {
	GameUpdate(dt float64)
}

// Content is the single occupant of a tile.
type Content struct {
	pool.Origin

	typ      ContentType
	tower    TowerType
	pos      Point
	behavior Updater
}

// Type returns the content tag.
func (c *Content) Type() ContentType { return c.typ }

// TowerType returns the tower subtype. Only meaningful for ContentTower.
func (c *Content) TowerType() TowerType { return c.tower }

// Position returns the anchor of the tile holding this content.
func (c *Content) Position() Point { return c.pos }

// Behavior returns the tower behavior, or nil for non-tower content.
func (c *Content) Behavior() Updater { return c.behavior }

// BlocksPath reports whether enemies cannot walk through this content.
func (c *Content) BlocksPath() bool {
	return c.typ == ContentWall || c.typ == ContentTower
}

// GameUpdate advances the attached behavior, if any.
func (c *Content) GameUpdate(dt float64) {
	if c.behavior != nil {
		c.behavior.GameUpdate(dt)
	}
}

// TowerBuilder creates the behavior for a freshly allocated tower content.
type TowerBuilder func(t TowerType, c *Content) Updater

// ContentFactory allocates tile content through an ownership-checked pool.
type ContentFactory struct {
	pool   *pool.Pool[*Content]
	towers TowerBuilder
}

// NewContentFactory creates a factory. towers may be nil, in which case
// towers are inert blockers.
func NewContentFactory(towers TowerBuilder) *ContentFactory {
	f := &ContentFactory{
		pool:   pool.New("content", func() *Content { return &Content{} }),
		towers: towers,
	}
	f.pool.OnReclaim(func(c *Content) {
		c.behavior = nil
	})
	return f
}

// Get returns new content of the given non-tower type.
func (f *ContentFactory) Get(t ContentType) *Content {
	if t == ContentTower {
		panic("board: tower content must be created with GetTower")
	}
	if t > ContentTower {
		panic(fmt.Sprintf("board: unknown content type %d", t))
	}
	c := f.pool.Get()
	c.typ = t
	return c
}

// GetTower returns new tower content of the given subtype.
func (f *ContentFactory) GetTower(t TowerType) *Content {
	c := f.pool.Get()
	c.typ = ContentTower
	c.tower = t
	if f.towers != nil {
		c.behavior = f.towers(t, c)
	}
	return c
}

// Reclaim returns content to the factory's pool.
func (f *ContentFactory) Reclaim(c *Content) {
	f.pool.Reclaim(c)
}

// Live returns the number of content instances currently in use.
func (f *ContentFactory) Live() int {
	return f.pool.Live()
}
