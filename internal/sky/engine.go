package sky

import (
	"context"
	"time"

	"cloudeng.io/errors"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
	"github.com/chandrasekarnarayana/night-sky/internal/catalog"
	"github.com/chandrasekarnarayana/night-sky/internal/ephem"
	"github.com/chandrasekarnarayana/night-sky/internal/logging"
)

// Engine computes sky snapshots. It is safe for concurrent use: catalog
// data is read-only once loaded and ephemeris source selection serializes
// inside the manager.
type Engine struct {
	ephem   *ephem.Manager
	builtin ephem.Source
	log     *logging.Logger
}

// NewEngine creates an engine. mgr may be nil, in which case every
// computation uses the builtin analytic ephemeris. A nil log discards.
func NewEngine(mgr *ephem.Manager, log *logging.Logger) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	return &Engine{
		ephem:   mgr,
		builtin: ephem.NewBuiltinSource(),
		log:     log,
	}
}

// ComputeSnapshot produces the visible sky for an observer at (lat, lon)
// degrees and the given instant. The computation is a pure function of its
// inputs under the builtin ephemeris. A bad timestamp or an unloadable
// catalog fails the whole call; individual bodies that cannot be placed
// are omitted from the result instead.
func (e *Engine) ComputeSnapshot(ctx context.Context, latDeg, lonDeg float64, instant time.Time, s Settings) (*Snapshot, error) {
	instant, err := NormalizeTime(instant, s.TimeScale)
	if err != nil {
		return nil, err
	}

	stars, err := catalog.Load(catalog.ParseMode(s.CatalogMode), s.CustomCatalog)
	if err != nil {
		return nil, err
	}
	stars = FilterCatalog(stars, s.LimitingMagnitude, s.LightPollutionBortle)

	src, release := e.acquireSource(ctx, instant, s)
	defer release()

	obs := astro.Observer{LatDeg: latDeg, LonDeg: lonDeg}
	snap := &Snapshot{
		LatDeg:          latDeg,
		LonDeg:          lonDeg,
		Instant:         instant,
		EphemerisSource: src.Name(),
	}

	snap.VisibleStars = e.projectStars(stars, obs, instant, s)
	snap.DeepSky = e.projectDeepSky(obs, instant, s)

	var errs errors.M

	sunEq, err := src.Position("sun", instant)
	if err != nil {
		// The Sun anchors twilight, phase, and eclipse checks; fall
		// back to the analytic series rather than degrade all three.
		errs.Append(err)
		sunEq = astro.SunPosition(instant)
	}
	snap.SunAltDeg = e.correctAlt(astro.ToHorizon(sunEq, obs, instant).AltDeg, s)

	eventBodies := []bodyCoord{{name: "sun", eq: sunEq}}
	riseSetTargets := []bodyCoord{{name: "sun", eq: sunEq}}

	for _, name := range astro.Planets {
		eq, err := src.Position(name, instant)
		if err != nil {
			errs.Append(err)
			continue
		}
		hz := astro.ToHorizon(eq, obs, instant)
		alt := e.correctAlt(hz.AltDeg, s)
		if alt <= 0 {
			continue
		}
		snap.VisiblePlanets = append(snap.VisiblePlanets, Body{
			Name:   name,
			RADeg:  eq.RADeg,
			DecDeg: eq.DecDeg,
			AltDeg: alt,
			AzDeg:  hz.AzDeg,
		})
		eventBodies = append(eventBodies, bodyCoord{name: name, eq: eq})
		riseSetTargets = append(riseSetTargets, bodyCoord{name: name, eq: eq})
	}

	moonEq, err := src.Position("moon", instant)
	if err != nil {
		errs.Append(err)
	} else {
		moon := e.buildMoon(moonEq, sunEq, obs, instant, s)
		snap.Moon = &moon
		if moon.AltDeg > 0 {
			snap.VisiblePlanets = append([]Body{moon}, snap.VisiblePlanets...)
			eventBodies = append(eventBodies, bodyCoord{name: "moon", eq: moonEq})
		}
		riseSetTargets = append(riseSetTargets, bodyCoord{name: "moon", eq: moonEq})
	}

	for _, target := range riseSetTargets {
		snap.RiseSet = append(snap.RiseSet,
			solveRiseSet(target.name, target.eq, obs, instant, s.RiseSetStep, s.ApplyRefraction))
	}

	snap.Events = detectEvents(eventBodies, s.ConjunctionMaxSepDeg, s.EclipseMaxSepDeg)

	if snap.SunAltDeg > s.TwilightSunAltDeg {
		snap.VisibleStars = nil
		snap.VisiblePlanets = nil
		snap.DeepSky = nil
		snap.TwilightSuppressed = true
	}

	if err := errs.Err(); err != nil {
		e.log.Warn("snapshot at %s degraded: %v", instant.Format(time.RFC3339), err)
	}

	return snap, nil
}

// acquireSource returns the ephemeris source for this computation and its
// release function.
func (e *Engine) acquireSource(ctx context.Context, instant time.Time, s Settings) (ephem.Source, func()) {
	if !s.HighAccuracyEphemeris || e.ephem == nil {
		return e.builtin, func() {}
	}
	return e.ephem.Acquire(ctx, instant)
}

// projectStars converts the filtered catalog into the horizon frame,
// preserving catalog order and keeping only entries above the horizon.
func (e *Engine) projectStars(entries []catalog.Entry, obs astro.Observer, instant time.Time, s Settings) []Star {
	var visible []Star
	for _, entry := range entries {
		eq := astro.Equatorial{RADeg: entry.RADeg, DecDeg: entry.DecDeg}
		if s.ApplyPrecessionNutation {
			eq = astro.Precess(eq, instant)
		}
		if s.ApplyAberration {
			eq = astro.Aberrate(eq, instant)
		}
		hz := astro.ToHorizon(eq, obs, instant)
		alt := e.correctAlt(hz.AltDeg, s)
		if alt <= 0 {
			continue
		}
		visible = append(visible, Star{
			ID:        entry.ID,
			Name:      entry.Name,
			RADeg:     eq.RADeg,
			DecDeg:    eq.DecDeg,
			Magnitude: entry.Mag,
			AltDeg:    alt,
			AzDeg:     hz.AzDeg,
		})
	}
	return visible
}

func (e *Engine) projectDeepSky(obs astro.Observer, instant time.Time, s Settings) []DeepSkyObject {
	var visible []DeepSkyObject
	for _, obj := range catalog.DeepSkyObjects() {
		eq := astro.Equatorial{RADeg: obj.RADeg, DecDeg: obj.DecDeg}
		hz := astro.ToHorizon(eq, obs, instant)
		alt := e.correctAlt(hz.AltDeg, s)
		if alt <= 0 {
			continue
		}
		visible = append(visible, DeepSkyObject{
			Name:   obj.Name,
			Type:   obj.Type,
			RADeg:  obj.RADeg,
			DecDeg: obj.DecDeg,
			AltDeg: alt,
			AzDeg:  hz.AzDeg,
		})
	}
	return visible
}

// buildMoon assembles the Moon body with its phase fields. The Moon is
// reported on the snapshot whenever its position is known, above the
// horizon or not.
func (e *Engine) buildMoon(moonEq, sunEq astro.Equatorial, obs astro.Observer, instant time.Time, s Settings) Body {
	hz := astro.ToHorizon(moonEq, obs, instant)
	fraction, waxing := MoonPhase(sunEq, moonEq)
	return Body{
		Name:          "moon",
		RADeg:         moonEq.RADeg,
		DecDeg:        moonEq.DecDeg,
		AltDeg:        e.correctAlt(hz.AltDeg, s),
		AzDeg:         hz.AzDeg,
		PhaseFraction: &fraction,
		PhaseName:     PhaseName(fraction, waxing),
		Waxing:        &waxing,
	}
}

func (e *Engine) correctAlt(altDeg float64, s Settings) float64 {
	if !s.ApplyRefraction {
		return altDeg
	}
	return astro.RefractAltitude(altDeg)
}
