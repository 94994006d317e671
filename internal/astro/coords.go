// Package astro provides the coordinate transforms and analytic ephemerides
// behind the sky snapshot engine: RA/Dec to Alt/Az conversion, sidereal time,
// angular separation, refraction, and low-precision Sun/Moon/planet positions.
package astro

import (
	"math"
	"time"
)

// Equatorial represents observer-independent sky coordinates (J2000 unless
// noted otherwise by the producing function).
type Equatorial struct {
	RADeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Horizon represents observer-relative horizon coordinates.
type Horizon struct {
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith, negative below)
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// ToHorizon converts equatorial coordinates to horizon coordinates for a
// given observer and time. Azimuth is normalized to [0, 360).
func ToHorizon(eq Equatorial, obs Observer, t time.Time) Horizon {
	lat := degToRad(obs.LatDeg)
	ra := degToRad(eq.RADeg)
	dec := degToRad(eq.DecDeg)

	lst := localSiderealTime(t, obs.LonDeg)

	// Hour Angle = LST - RA
	ha := degToRad(lst) - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	az := math.Acos(clamp(cosAz, -1, 1))

	// Positive hour angle puts the object west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizon{
		AltDeg: radToDeg(alt),
		AzDeg:  normalizeAngle360(radToDeg(az)),
	}
}

// localSiderealTime calculates the Local Sidereal Time in degrees
// for a given UTC time and observer longitude.
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime calculates GMST in degrees using the IAU 1982
// formula on the Julian Date.
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// JulianDate calculates the Julian Date for a given time.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// AngularSeparation calculates the great-circle separation between two points
// on the celestial sphere. All angles in degrees.
func AngularSeparation(a, b Equatorial) float64 {
	ra1 := degToRad(a.RADeg)
	dec1 := degToRad(a.DecDeg)
	ra2 := degToRad(b.RADeg)
	dec2 := degToRad(b.DecDeg)

	// Haversine form, stable for small separations.
	dRA := ra2 - ra1
	dDec := dec2 - dec1

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Sin(dRA/2)*math.Sin(dRA/2)

	return radToDeg(2 * math.Asin(math.Sqrt(clamp(h, 0, 1))))
}

// normalizeAngle360 normalizes an angle to [0, 360) degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
