package astro

import (
	"math"
	"time"
)

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Uses a simplified solar ephemeris based on the Astronomical Almanac.
// Accuracy: ~0.01 degrees for RA, ~0.001 degrees for Dec, sufficient for
// visibility, twilight, and separation-angle work.
func SunPosition(t time.Time) Equatorial {
	jd := JulianDate(t)

	// Julian centuries from J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude of the Sun (degrees)
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// True longitude, then apparent longitude corrected for aberration
	// and nutation in longitude.
	sunLon := L0 + C
	omega := 125.04 - 1934.136*T
	sunLonApp := sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Obliquity of the ecliptic, corrected for nutation in obliquity.
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	lonRad := degToRad(sunLonApp)
	epsRad := degToRad(eps)

	ra := math.Atan2(math.Cos(epsRad)*math.Sin(lonRad), math.Cos(lonRad))
	dec := math.Asin(math.Sin(epsRad) * math.Sin(lonRad))

	return Equatorial{
		RADeg:  normalizeAngle360(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}
}

// SunEclipticLongitude returns the Sun's apparent ecliptic longitude in
// degrees. Used by the annual aberration correction.
func SunEclipticLongitude(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := degToRad(normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T))

	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(M) +
		(0.019993-0.000101*T)*math.Sin(2*M) +
		0.000289*math.Sin(3*M)

	return normalizeAngle360(L0 + C)
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees.
func MeanObliquity(t time.Time) float64 {
	T := (JulianDate(t) - 2451545.0) / 36525.0
	return 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
}
