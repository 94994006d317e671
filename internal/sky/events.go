package sky

import (
	"math"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

// bodyCoord pairs a body name with its equatorial position for the event
// scan.
type bodyCoord struct {
	name string
	eq   astro.Equatorial
}

// detectEvents runs the pairwise separation scan over the given bodies.
// Any pair closer than conjMaxDeg is a conjunction. The Sun-Moon pair is
// additionally screened for eclipse-risk windows: a separation under
// eclipseMaxDeg flags a possible solar eclipse, a separation within
// eclipseMaxDeg of opposition flags a possible lunar one. These are coarse
// screens with no parallax or shadow geometry.
func detectEvents(bodies []bodyCoord, conjMaxDeg, eclipseMaxDeg float64) []Event {
	var events []Event

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			sep := astro.AngularSeparation(bodies[i].eq, bodies[j].eq)
			if sep < conjMaxDeg {
				events = append(events, Event{
					Kind:          EventConjunction,
					BodyA:         bodies[i].name,
					BodyB:         bodies[j].name,
					SeparationDeg: sep,
				})
			}
			if !sunMoonPair(bodies[i].name, bodies[j].name) {
				continue
			}
			if sep < eclipseMaxDeg {
				events = append(events, Event{
					Kind:          EventEclipseWindow,
					EclipseKind:   EclipseSolar,
					SeparationDeg: sep,
				})
			}
			if math.Abs(sep-180) < eclipseMaxDeg {
				events = append(events, Event{
					Kind:          EventEclipseWindow,
					EclipseKind:   EclipseLunar,
					SeparationDeg: sep,
				})
			}
		}
	}

	return events
}

func sunMoonPair(a, b string) bool {
	return (a == "sun" && b == "moon") || (a == "moon" && b == "sun")
}
