package core

// Color is the role of a screen cell. Games pick roles; the platform
// decides what each role looks like on the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorMuted         // Empty tiles, path arrows, help line
	ColorTitle         // Message box titles
	ColorCursor
	ColorWall
	ColorDestination
	ColorSpawnPoint
	ColorLaser
	ColorLaserFiring
	ColorMortar
	ColorBeam
	ColorShell
	ColorExplosion
	ColorHealthy
	ColorWounded
	ColorCritical
	ColorNotice
	ColorError
)

// HealthColor returns the role for a health fraction in [0, 1].
func HealthColor(fraction float64) Color {
	switch {
	case fraction <= 0.33:
		return ColorCritical
	case fraction <= 0.66:
		return ColorWounded
	default:
		return ColorHealthy
	}
}
