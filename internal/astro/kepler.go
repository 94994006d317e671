package astro

import (
	"math"
	"time"
)

// Vec3 represents a 3D vector in an ecliptic or equatorial frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// orbitalElements holds osculating Keplerian elements at a day number.
// Angles in degrees, semi-major axis in AU (Earth radii for the Moon).
type orbitalElements struct {
	node float64 // longitude of the ascending node
	incl float64 // inclination to the ecliptic
	peri float64 // argument of perihelion
	a    float64 // semi-major axis
	e    float64 // eccentricity
	m    float64 // mean anomaly
}

// dayNumber returns days since 2000-01-01 00:00 UT minus 1.5 days, the epoch
// the orbital element rates below are referred to.
func dayNumber(t time.Time) float64 {
	return JulianDate(t) - 2451543.5
}

// eccentricAnomaly solves Kepler's equation M = E - e*sin(E) by Newton
// iteration. Input and output in radians.
func eccentricAnomaly(m, e float64) float64 {
	E := m + e*math.Sin(m)*(1+e*math.Cos(m))
	for i := 0; i < 10; i++ {
		dE := (E - e*math.Sin(E) - m) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-8 {
			break
		}
	}
	return E
}

// heliocentric computes the ecliptic position vector (AU) for a body with
// the given osculating elements. For the Moon the same geometry yields a
// geocentric vector in Earth radii.
func heliocentric(el orbitalElements) Vec3 {
	mRad := degToRad(normalizeAngle360(el.m))
	E := eccentricAnomaly(mRad, el.e)

	// Position in the orbital plane.
	xv := el.a * (math.Cos(E) - el.e)
	yv := el.a * math.Sqrt(1-el.e*el.e) * math.Sin(E)

	v := math.Atan2(yv, xv)               // true anomaly
	r := math.Sqrt(xv*xv + yv*yv)         // distance
	n := degToRad(el.node)                // ascending node
	w := degToRad(el.peri)                // argument of perihelion
	i := degToRad(el.incl)                // inclination
	u := v + w                            // argument of latitude

	return Vec3{
		X: r * (math.Cos(n)*math.Cos(u) - math.Sin(n)*math.Sin(u)*math.Cos(i)),
		Y: r * (math.Sin(n)*math.Cos(u) + math.Cos(n)*math.Sin(u)*math.Cos(i)),
		Z: r * (math.Sin(u) * math.Sin(i)),
	}
}

// eclipticToEquatorial rotates a geocentric ecliptic vector into the
// equatorial frame and returns RA/Dec in degrees.
func eclipticToEquatorial(v Vec3, t time.Time) Equatorial {
	eps := degToRad(MeanObliquity(t))

	xe := v.X
	ye := v.Y*math.Cos(eps) - v.Z*math.Sin(eps)
	ze := v.Y*math.Sin(eps) + v.Z*math.Cos(eps)

	ra := normalizeAngle360(radToDeg(math.Atan2(ye, xe)))
	dec := radToDeg(math.Atan2(ze, math.Sqrt(xe*xe+ye*ye)))

	return Equatorial{RADeg: ra, DecDeg: dec}
}

// eclipticLonLat converts an ecliptic vector to spherical longitude and
// latitude in degrees.
func eclipticLonLat(v Vec3) (lon, lat, r float64) {
	r = v.Norm()
	lon = normalizeAngle360(radToDeg(math.Atan2(v.Y, v.X)))
	lat = radToDeg(math.Asin(v.Z / r))
	return lon, lat, r
}

// eclipticVec builds an ecliptic vector from spherical coordinates
// (degrees, distance unit preserved).
func eclipticVec(lonDeg, latDeg, r float64) Vec3 {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	return Vec3{
		X: r * math.Cos(lon) * math.Cos(lat),
		Y: r * math.Sin(lon) * math.Cos(lat),
		Z: r * math.Sin(lat),
	}
}
