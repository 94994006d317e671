package astro

import "math"

// Refraction model bounds. Bennett's approximation is only meaningful in the
// near-horizon band; outside it the input altitude is returned untouched.
const (
	refractionMinAltDeg = -1.0
	refractionMaxAltDeg = 90.0
)

// RefractAltitude applies Bennett's atmospheric refraction approximation to
// a true altitude and returns the apparent altitude, both in degrees.
//
//	R_arcmin = 1.02 / tan(h + 10.3/(h + 5.11))
//
// The correction is clamped to be non-negative so enabling refraction can
// only raise an object, never sink it.
func RefractAltitude(altDeg float64) float64 {
	if altDeg < refractionMinAltDeg || altDeg > refractionMaxAltDeg {
		return altDeg
	}

	h := math.Max(altDeg, refractionMinAltDeg)
	r := 1.02 / math.Tan(degToRad(h+10.3/(h+5.11)))
	if r < 0 {
		r = 0
	}

	return altDeg + r/60.0
}
