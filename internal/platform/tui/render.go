package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-defense/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// theme maps cell roles to terminal styles (ANSI 256 codes).
var theme = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorMuted:       fg("245"),
	core.ColorTitle:       fg("15").Bold(true),
	core.ColorCursor:      fg("11").Bold(true),
	core.ColorWall:        fg("7"),
	core.ColorDestination: fg("10").Bold(true),
	core.ColorSpawnPoint:  fg("13").Bold(true),
	core.ColorLaser:       fg("6"),
	core.ColorLaserFiring: fg("9").Bold(true),
	core.ColorMortar:      fg("208"),
	core.ColorBeam:        fg("1"),
	core.ColorShell:       fg("208"),
	core.ColorExplosion:   fg("11"),
	core.ColorHealthy:     fg("10"),
	core.ColorWounded:     fg("11"),
	core.ColorCritical:    fg("9"),
	core.ColorNotice:      fg("2"),
	core.ColorError:       fg("1"),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a role are rendered as one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			role := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(role).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := theme[c]; ok {
		return st
	}
	return theme[core.ColorDefault]
}
