package defense

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/games/defense/board"
	"github.com/vovakirdan/tui-defense/internal/games/defense/spawn"
	"github.com/vovakirdan/tui-defense/internal/games/defense/war"
)

// Screen layout
const (
	tileW      = 3 // Columns per tile; the content glyph sits in the middle
	hudRows    = 2
	footerRows = 2
	beamDots   = 4
)

// updateLayout positions the board on screen. A zero-sized screen runs headless.
func (g *Game) updateLayout() {
	w, h := g.world.Board().Size()
	needW := w*tileW + 2
	needH := hudRows + h + 2 + footerRows
	headless := core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH}.Headless()
	g.tooSmall = !headless && (g.screenW < needW || g.screenH < needH)
	g.boardX = (g.screenW - needW) / 2
	g.boardY = hudRows
}

// Resize moves the board for a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.world != nil {
		g.updateLayout()
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.world.Board().Size()
		g.drawCenteredMessage(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", w*tileW+2, hudRows+h+2+footerRows))
		return
	}

	g.renderBoard(dst)
	g.renderBeams(dst)
	g.renderEnemies(dst)
	g.renderEffects(dst)
	g.renderFooter(dst)

	switch g.outcome {
	case OutcomeVictory:
		g.drawCenteredMessage(dst, "VICTORY", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case OutcomeDefeat:
		g.drawCenteredMessage(dst, "DEFEAT", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	default:
		if g.paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	stats := g.world.Stats()
	var hud string
	if g.mode == ModeSandbox {
		hud = fmt.Sprintf(" %s — Enemies: %d  Kills: %d  Speed: x%g",
			g.Title(), len(g.world.Enemies()), stats.Kills, g.playSpeed)
	} else {
		hud = fmt.Sprintf(" %s — Wave: %d/%d  Health: %d  Kills: %d  Score: %d  Speed: x%g",
			g.Title(), g.wave(), g.scenario.WaveCount(), g.world.Health(), stats.Kills, g.score, g.playSpeed)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// toScreen maps a board-plane point to a screen cell.
func (g *Game) toScreen(p board.Point) (int, int) {
	w, h := g.world.Board().Size()
	fx := p.X + float64(w-1)*0.5
	fy := float64(h-1)*0.5 - p.Y
	x := g.boardX + 1 + int(math.Round(fx*tileW)) + tileW/2
	y := g.boardY + 1 + int(math.Round(fy))
	return x, y
}

// boardRect is the board's box on screen, border included.
func (g *Game) boardRect() core.Rect {
	w, h := g.world.Board().Size()
	return core.NewRect(g.boardX, g.boardY, w*tileW+2, h+2)
}

func (g *Game) renderBoard(dst *core.Screen) {
	b := g.world.Board()
	_, h := b.Size()
	dst.DrawBox(g.boardRect())

	for _, t := range b.Tiles() {
		x, y := t.Coord()
		sx := g.boardX + 1 + x*tileW
		sy := g.boardY + 1 + (h - 1 - y)
		r, c := g.tileGlyph(t)
		dst.SetColored(sx+tileW/2, sy, r, c)
		if x == g.cursorX && y == g.cursorY && g.outcome == OutcomePlaying {
			dst.SetColored(sx, sy, '[', core.ColorCursor)
			dst.SetColored(sx+tileW-1, sy, ']', core.ColorCursor)
		}
	}
}

func (g *Game) tileGlyph(t *board.Tile) (rune, core.Color) {
	c := t.Content()
	switch c.Type() {
	case board.ContentWall:
		return '#', core.ColorWall
	case board.ContentDestination:
		return 'D', core.ColorDestination
	case board.ContentSpawnPoint:
		return 'S', core.ColorSpawnPoint
	case board.ContentTower:
		if c.TowerType() == board.TowerMortar {
			return 'M', core.ColorMortar
		}
		if l, ok := c.Behavior().(*war.LaserTower); ok && l.Target() != nil {
			return 'L', core.ColorLaserFiring
		}
		return 'L', core.ColorLaser
	}
	if g.showPaths && t.HasPath() {
		return arrow(t.ExitDirection()), core.ColorMuted
	}
	return '.', core.ColorMuted
}

func arrow(d board.Direction) rune {
	switch d {
	case board.DirNorth:
		return '↑'
	case board.DirEast:
		return '→'
	case board.DirSouth:
		return '↓'
	case board.DirWest:
		return '←'
	}
	return '·'
}

// renderBeams dots the line between each firing laser and its target.
func (g *Game) renderBeams(dst *core.Screen) {
	inner := g.boardRect().Inset(1)
	for _, t := range g.world.Board().Tiles() {
		l, ok := t.Content().Behavior().(*war.LaserTower)
		if !ok || l.Target() == nil || !l.Target().IsValidTarget() {
			continue
		}
		from := t.Position()
		to := l.Target().Position()
		for i := 1; i < beamDots; i++ {
			x, y := g.toScreen(from.Lerp(to, float64(i)/beamDots))
			if !inner.Contains(x, y) {
				continue
			}
			if dst.Get(x, y) == '.' || dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, '·', core.ColorBeam)
			}
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.world.Enemies() {
		x, y := g.toScreen(e.Position())
		r := 'e'
		switch e.Kind() {
		case spawn.KindMedium:
			r = 'E'
		case spawn.KindLarge:
			r = '@'
		}
		dst.SetColored(x, y, r, core.HealthColor(e.HealthFraction()))
	}
}

func (g *Game) renderEffects(dst *core.Screen) {
	for _, fx := range g.world.Effects() {
		switch v := fx.(type) {
		case *war.Shell:
			x, y := g.toScreen(v.Position())
			dst.SetColored(x, y, '*', core.ColorShell)
		case *war.Explosion:
			inner := g.boardRect().Inset(1)
			for _, p := range blastRing(v.Position(), v.Radius()) {
				x, y := g.toScreen(p)
				if inner.Contains(x, y) && dst.Get(x, y) == '.' {
					dst.SetColored(x, y, '+', core.ColorExplosion)
				}
			}
			x, y := g.toScreen(v.Position())
			r := 'O'
			if v.Progress() > 0.5 {
				r = 'o'
			}
			dst.SetColored(x, y, r, core.ColorExplosion)
		}
	}
}

// blastRing returns the eight compass points at radius around center.
func blastRing(center board.Point, radius float64) []board.Point {
	const diag = math.Sqrt2 / 2
	offsets := [8]board.Point{
		{X: 0, Y: 1}, {X: diag, Y: diag}, {X: 1, Y: 0}, {X: diag, Y: -diag},
		{X: 0, Y: -1}, {X: -diag, Y: -diag}, {X: -1, Y: 0}, {X: -diag, Y: diag},
	}
	ring := make([]board.Point, 0, len(offsets))
	for _, o := range offsets {
		ring = append(ring, center.Add(o.Scale(radius)))
	}
	return ring
}

func (g *Game) renderFooter(dst *core.Screen) {
	_, h := g.world.Board().Size()
	y := g.boardY + h + 2
	if g.editNoticeTicks > 0 {
		msg := fmt.Sprintf(" %s: %s", g.lastEditAction, g.lastEdit)
		c := core.ColorNotice
		switch g.lastEdit {
		case board.EditRejected:
			msg += " (every tile needs a path to a destination)"
			c = core.ColorError
		case board.EditIgnored:
			c = core.ColorMuted
		}
		dst.DrawColoredText(0, y, msg, c)
	}
	help := " arrows move  space wall  1 laser  2 mortar  x dest  z spawn  v paths  +/- speed  p pause"
	if g.mode == ModeSandbox {
		help += "  enter enemy"
	}
	dst.DrawColoredText(0, y+1, help, core.ColorMuted)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawColoredText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorTitle)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// DescribePaths renders the path field of a board as text, northern row
// first: content symbols for non-empty tiles, arrows for the rest and 'x'
// for tiles without a path.
func DescribePaths(b *board.Board) []string {
	w, h := b.Size()
	rows := make([]string, h)
	layout := b.Layout()
	for i := range rows {
		y := h - 1 - i
		symbols := []rune(layout[i])
		var sb strings.Builder
		for x := 0; x < w; x++ {
			t := b.TileAt(x, y)
			switch {
			case symbols[x] != board.LayoutEmpty:
				sb.WriteRune(symbols[x])
			case !t.HasPath():
				sb.WriteRune('x')
			default:
				sb.WriteRune(arrow(t.ExitDirection()))
			}
		}
		rows[i] = sb.String()
	}
	return rows
}

// DescribeDistances renders the distance of every tile to its nearest
// destination, northern row first. Unreachable tiles show as "-".
func DescribeDistances(b *board.Board) []string {
	w, h := b.Size()
	rows := make([]string, h)
	for i := range rows {
		y := h - 1 - i
		cells := make([]string, w)
		for x := 0; x < w; x++ {
			t := b.TileAt(x, y)
			if t.HasPath() {
				cells[x] = fmt.Sprintf("%3d", t.Distance())
			} else {
				cells[x] = "  -"
			}
		}
		rows[i] = strings.Join(cells, "")
	}
	return rows
}
