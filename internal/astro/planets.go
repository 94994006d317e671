package astro

import (
	"fmt"
	"math"
	"time"
)

// Planet names accepted by PlanetPosition. The engine tracks the five naked-eye
// planets, matching the bodies the original viewer displays.
var Planets = []string{"mercury", "venus", "mars", "jupiter", "saturn"}

// planetForDay returns osculating elements for a planet at day number d.
// Element values and linear rates follow standard low-precision planetary
// theory (valid within a few arcminutes over several centuries around J2000).
func planetForDay(name string, d float64) (orbitalElements, bool) {
	switch name {
	case "mercury":
		return orbitalElements{
			node: 48.3313 + 3.24587e-5*d,
			incl: 7.0047 + 5.00e-8*d,
			peri: 29.1241 + 1.01444e-5*d,
			a:    0.387098,
			e:    0.205635 + 5.59e-10*d,
			m:    168.6562 + 4.0923344368*d,
		}, true
	case "venus":
		return orbitalElements{
			node: 76.6799 + 2.46590e-5*d,
			incl: 3.3946 + 2.75e-8*d,
			peri: 54.8910 + 1.38374e-5*d,
			a:    0.723330,
			e:    0.006773 - 1.302e-9*d,
			m:    48.0052 + 1.6021302244*d,
		}, true
	case "mars":
		return orbitalElements{
			node: 49.5574 + 2.11081e-5*d,
			incl: 1.8497 - 1.78e-8*d,
			peri: 286.5016 + 2.92961e-5*d,
			a:    1.523688,
			e:    0.093405 + 2.516e-9*d,
			m:    18.6021 + 0.5240207766*d,
		}, true
	case "jupiter":
		return orbitalElements{
			node: 100.4542 + 2.76854e-5*d,
			incl: 1.3030 - 1.557e-7*d,
			peri: 273.8777 + 1.64505e-5*d,
			a:    5.20256,
			e:    0.048498 + 4.469e-9*d,
			m:    19.8950 + 0.0830853001*d,
		}, true
	case "saturn":
		return orbitalElements{
			node: 113.6634 + 2.38980e-5*d,
			incl: 2.4886 - 1.081e-7*d,
			peri: 339.3939 + 2.97661e-5*d,
			a:    9.55475,
			e:    0.055546 - 9.499e-9*d,
			m:    316.9670 + 0.0334442282*d,
		}, true
	}
	return orbitalElements{}, false
}

// PlanetPosition calculates geocentric equatorial coordinates for one of the
// five classical planets. Returns an error for unknown body names.
func PlanetPosition(name string, t time.Time) (Equatorial, error) {
	d := dayNumber(t)

	el, ok := planetForDay(name, d)
	if !ok {
		return Equatorial{}, fmt.Errorf("unknown planet %q", name)
	}

	helio := heliocentric(el)

	// Jupiter and Saturn perturb each other enough to matter at this
	// precision; apply the leading mutual terms in ecliptic longitude.
	if name == "jupiter" || name == "saturn" {
		lon, lat, r := eclipticLonLat(helio)
		mj := degToRad(normalizeAngle360(19.8950 + 0.0830853001*d))
		ms := degToRad(normalizeAngle360(316.9670 + 0.0334442282*d))
		switch name {
		case "jupiter":
			lon += -0.332 * math.Sin(2*mj-5*ms-degToRad(67.6))
			lon += -0.056 * math.Sin(2*mj-2*ms+degToRad(21))
			lon += 0.042 * math.Sin(3*mj-5*ms+degToRad(21))
			lon += -0.036 * math.Sin(mj-2*ms)
		case "saturn":
			lon += 0.812 * math.Sin(2*mj-5*ms-degToRad(67.6))
			lon += -0.229 * math.Cos(2*mj-4*ms-degToRad(2))
			lon += 0.119 * math.Sin(mj-2*ms-degToRad(3))
			lon += 0.046 * math.Sin(2*mj-6*ms-degToRad(69))
			lat += -0.020 * math.Cos(2*mj-4*ms-degToRad(2))
			lat += 0.018 * math.Sin(2*mj-6*ms-degToRad(49))
		}
		helio = eclipticVec(lon, lat, r)
	}

	// Geocentric = heliocentric planet + geocentric Sun.
	sunGeo := sunEclipticVec(t)
	return eclipticToEquatorial(helio.Add(sunGeo), t), nil
}

// sunEclipticVec returns the geocentric ecliptic position of the Sun in AU.
func sunEclipticVec(t time.Time) Vec3 {
	d := dayNumber(t)

	w := 282.9404 + 4.70935e-5*d
	e := 0.016709 - 1.151e-9*d
	m := degToRad(normalizeAngle360(356.0470 + 0.9856002585*d))

	E := eccentricAnomaly(m, e)
	xv := math.Cos(E) - e
	yv := math.Sqrt(1-e*e) * math.Sin(E)

	v := math.Atan2(yv, xv)
	r := math.Sqrt(xv*xv + yv*yv)
	lon := normalizeAngle360(radToDeg(v) + w)

	return eclipticVec(lon, 0, r)
}
