package sky

import (
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

const riseSetWindow = 12 * time.Hour

// solveRiseSet samples the altitude of a fixed celestial coordinate across
// instant ± 12h (window start floored to the hour) and reports the first
// upward horizon crossing as rise, the first downward crossing as set, and
// the maximum sampled altitude as culmination. A body that never crosses
// in either direction within the window gets nil for that crossing, which
// covers both circumpolar and never-rising geometry.
//
// The coordinate is not re-queried per sample, so the Moon's motion across
// the window shifts its crossings by up to its hourly drift.
func solveRiseSet(name string, eq astro.Equatorial, obs astro.Observer, instant time.Time, step time.Duration, refract bool) RiseSetRecord {
	if step <= 0 {
		step = 10 * time.Minute
	}
	start := instant.UTC().Add(-riseSetWindow).Truncate(time.Hour)
	end := instant.UTC().Add(riseSetWindow)

	rec := RiseSetRecord{BodyName: name, CulminationAltDeg: -90}

	prev := altitudeAt(eq, obs, start, refract)
	if prev > rec.CulminationAltDeg {
		rec.CulminationAltDeg = prev
	}
	for ts := start.Add(step); !ts.After(end); ts = ts.Add(step) {
		alt := altitudeAt(eq, obs, ts, refract)
		if alt > rec.CulminationAltDeg {
			rec.CulminationAltDeg = alt
		}
		if rec.Rise == nil && prev <= 0 && alt > 0 {
			t := ts
			rec.Rise = &t
		}
		if rec.Set == nil && prev > 0 && alt <= 0 {
			t := ts
			rec.Set = &t
		}
		prev = alt
	}

	return rec
}

func altitudeAt(eq astro.Equatorial, obs astro.Observer, t time.Time, refract bool) float64 {
	alt := astro.ToHorizon(eq, obs, t).AltDeg
	if refract {
		alt = astro.RefractAltitude(alt)
	}
	return alt
}
