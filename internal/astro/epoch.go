package astro

import (
	"math"
	"time"
)

// Precess converts J2000 catalog coordinates to the mean equinox of date
// using the low-precision rigorous-enough annual precession formula.
func Precess(eq Equatorial, t time.Time) Equatorial {
	T := (JulianDate(t) - 2451545.0) / 36525.0

	// Precession constants in degrees per Julian century.
	m := 1.2812323*T + 0.0003879*T*T
	n := 0.5567530*T - 0.0001185*T*T

	ra := degToRad(eq.RADeg)
	dec := degToRad(eq.DecDeg)

	dRA := m + n*math.Sin(ra)*math.Tan(dec)
	dDec := n * math.Cos(ra)

	return Equatorial{
		RADeg:  normalizeAngle360(eq.RADeg + dRA),
		DecDeg: clamp(eq.DecDeg+dDec, -90, 90),
	}
}

// aberrationConstDeg is the constant of annual aberration (20.49552 arcsec).
const aberrationConstDeg = 20.49552 / 3600.0

// Aberrate applies annual aberration to equatorial coordinates for the given
// time using the classical low-precision formula driven by the Sun's
// ecliptic longitude.
func Aberrate(eq Equatorial, t time.Time) Equatorial {
	lonSun := degToRad(SunEclipticLongitude(t))
	eps := degToRad(MeanObliquity(t))

	ra := degToRad(eq.RADeg)
	dec := degToRad(eq.DecDeg)

	cosDec := math.Cos(dec)
	if math.Abs(cosDec) < 1e-9 {
		// At the celestial pole RA is degenerate; skip the correction.
		return eq
	}

	dRA := -aberrationConstDeg *
		(math.Cos(ra)*math.Cos(lonSun)*math.Cos(eps) + math.Sin(ra)*math.Sin(lonSun)) / cosDec
	dDec := -aberrationConstDeg *
		(math.Cos(lonSun)*math.Cos(eps)*(math.Tan(eps)*cosDec-math.Sin(ra)*math.Sin(dec)) +
			math.Cos(ra)*math.Sin(dec)*math.Sin(lonSun))

	return Equatorial{
		RADeg:  normalizeAngle360(eq.RADeg + dRA),
		DecDeg: clamp(eq.DecDeg+dDec, -90, 90),
	}
}
