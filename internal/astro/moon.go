package astro

import (
	"math"
	"time"
)

// MoonPosition calculates geocentric equatorial coordinates of the Moon
// using low-precision osculating elements with the dominant perturbation
// terms (evection, variation, yearly equation and friends). Accuracy is a
// few arcminutes, well inside the needs of visibility and phase work.
func MoonPosition(t time.Time) Equatorial {
	d := dayNumber(t)

	el := orbitalElements{
		node: 125.1228 - 0.0529538083*d,
		incl: 5.1454,
		peri: 318.0634 + 0.1643573223*d,
		a:    60.2666, // Earth radii
		e:    0.054900,
		m:    115.3654 + 13.0649929509*d,
	}

	geo := heliocentric(el) // geocentric for the Moon's element set
	lon, lat, r := eclipticLonLat(geo)

	// Fundamental arguments for the perturbation series.
	sunM := 356.0470 + 0.9856002585*d    // Sun mean anomaly
	sunL := 282.9404 + 4.70935e-5*d + sunM // Sun mean longitude
	moonL := el.node + el.peri + el.m      // Moon mean longitude
	mm := degToRad(normalizeAngle360(el.m))
	ms := degToRad(normalizeAngle360(sunM))
	de := degToRad(normalizeAngle360(moonL - sunL)) // mean elongation
	f := degToRad(normalizeAngle360(moonL - el.node))

	// Perturbations in longitude (degrees).
	lon += -1.274 * math.Sin(mm-2*de)
	lon += 0.658 * math.Sin(2*de)
	lon += -0.186 * math.Sin(ms)
	lon += -0.059 * math.Sin(2*mm-2*de)
	lon += -0.057 * math.Sin(mm-2*de+ms)
	lon += 0.053 * math.Sin(mm+2*de)
	lon += 0.046 * math.Sin(2*de-ms)
	lon += 0.041 * math.Sin(mm-ms)
	lon += -0.035 * math.Sin(de)
	lon += -0.031 * math.Sin(mm+ms)
	lon += -0.015 * math.Sin(2*f-2*de)
	lon += 0.011 * math.Sin(mm-4*de)

	// Perturbations in latitude (degrees).
	lat += -0.173 * math.Sin(f-2*de)
	lat += -0.055 * math.Sin(mm-f-2*de)
	lat += -0.046 * math.Sin(mm+f-2*de)
	lat += 0.033 * math.Sin(f+2*de)
	lat += 0.017 * math.Sin(2*mm+f)

	return eclipticToEquatorial(eclipticVec(lon, lat, r), t)
}
