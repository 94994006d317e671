package sky

import (
	"math"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

// MoonPhase derives the illuminated fraction and waxing flag from the
// geocentric Sun and Moon positions. The separation between the two acts
// as the phase angle: 0 at new moon, 180 at full.
func MoonPhase(sun, moon astro.Equatorial) (fraction float64, waxing bool) {
	sep := astro.AngularSeparation(sun, moon)
	fraction = (1 - math.Cos(sep*math.Pi/180)) / 2
	waxing = math.Mod(moon.RADeg-sun.RADeg+360, 360) < 180
	return fraction, waxing
}

// PhaseName maps an illuminated fraction and waxing flag onto the common
// phase names. The bands are defined on the lunation cycle position, where
// 0 is new, 0.5 full, and 1 new again.
func PhaseName(fraction float64, waxing bool) string {
	cycle := fraction / 2
	if !waxing {
		cycle = 1 - fraction/2
	}

	switch {
	case cycle < 0.03:
		return "New"
	case cycle < 0.25:
		return "Waxing crescent"
	case cycle < 0.27:
		return "First quarter"
	case cycle < 0.48:
		return "Waxing gibbous"
	case cycle < 0.52:
		return "Full"
	case cycle < 0.73:
		return "Waning gibbous"
	case cycle < 0.77:
		return "Last quarter"
	case cycle < 0.97:
		return "Waning crescent"
	default:
		return "New"
	}
}
