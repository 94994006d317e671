package sky

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/catalog"
)

func newTestEngine() *Engine {
	return NewEngine(nil, nil)
}

func TestComputeSnapshot_EquatorMidnight(t *testing.T) {
	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap, err := newTestEngine().ComputeSnapshot(context.Background(), 0, 0, instant, DefaultSettings())
	if err != nil {
		t.Fatalf("ComputeSnapshot() error = %v", err)
	}

	if snap.Moon == nil {
		t.Fatal("moon is nil")
	}
	if f := *snap.Moon.PhaseFraction; f < 0 || f > 1 {
		t.Errorf("phase fraction = %.4f, out of [0,1]", f)
	}
	if snap.Moon.Waxing == nil || snap.Moon.PhaseName == "" {
		t.Error("moon phase fields incomplete")
	}

	var sunRec *RiseSetRecord
	for i := range snap.RiseSet {
		if snap.RiseSet[i].BodyName == "sun" {
			sunRec = &snap.RiseSet[i]
		}
	}
	if sunRec == nil {
		t.Fatal("no sun rise/set record")
	}
	if sunRec.Rise == nil || sunRec.Set == nil {
		t.Error("sun should rise and set at the equator")
	}

	if snap.TwilightSuppressed {
		t.Error("midnight snapshot should not be suppressed")
	}
	if len(snap.VisibleStars) == 0 {
		t.Error("no visible stars at midnight")
	}
	if snap.EphemerisSource != "builtin" {
		t.Errorf("ephemeris source = %q", snap.EphemerisSource)
	}
}

func TestComputeSnapshot_MembershipInvariants(t *testing.T) {
	instant := time.Date(2024, 7, 15, 15, 0, 0, 0, time.UTC)
	snap, err := newTestEngine().ComputeSnapshot(context.Background(), 35.0, 139.7, instant, DefaultSettings())
	if err != nil {
		t.Fatalf("ComputeSnapshot() error = %v", err)
	}
	if snap.TwilightSuppressed {
		t.Fatalf("local midnight suppressed, sun alt = %.2f", snap.SunAltDeg)
	}

	for _, s := range snap.VisibleStars {
		if s.AltDeg <= 0 {
			t.Errorf("star %s altitude %.2f not above horizon", s.Name, s.AltDeg)
		}
		if s.AzDeg < 0 || s.AzDeg >= 360 {
			t.Errorf("star %s azimuth %.2f out of [0,360)", s.Name, s.AzDeg)
		}
	}
	for _, b := range snap.VisiblePlanets {
		if b.AltDeg <= 0 {
			t.Errorf("body %s altitude %.2f not above horizon", b.Name, b.AltDeg)
		}
		if b.AzDeg < 0 || b.AzDeg >= 360 {
			t.Errorf("body %s azimuth %.2f out of [0,360)", b.Name, b.AzDeg)
		}
	}
	for _, d := range snap.DeepSky {
		if d.AltDeg <= 0 || d.AzDeg < 0 || d.AzDeg >= 360 {
			t.Errorf("deep-sky %s at (%.2f, %.2f)", d.Name, d.AltDeg, d.AzDeg)
		}
	}

	if snap.Moon != nil && snap.Moon.AltDeg > 0 {
		if len(snap.VisiblePlanets) == 0 || snap.VisiblePlanets[0].Name != "moon" {
			t.Error("visible moon should lead the planet list")
		}
	}
}

func TestComputeSnapshot_Idempotent(t *testing.T) {
	instant := time.Date(2024, 4, 10, 21, 30, 0, 0, time.UTC)
	engine := newTestEngine()

	first, err := engine.ComputeSnapshot(context.Background(), 48.8, 2.3, instant, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.ComputeSnapshot(context.Background(), 48.8, 2.3, instant, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different snapshots")
	}
}

func TestComputeSnapshot_TwilightSuppression(t *testing.T) {
	// Local noon at the equator: the Sun is high, the visible lists are
	// suppressed, but rise/set and events survive.
	instant := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	snap, err := newTestEngine().ComputeSnapshot(context.Background(), 0, 0, instant, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}

	if !snap.TwilightSuppressed {
		t.Fatalf("noon snapshot not suppressed, sun alt = %.2f", snap.SunAltDeg)
	}
	if snap.VisibleStars != nil || snap.VisiblePlanets != nil || snap.DeepSky != nil {
		t.Error("suppressed snapshot still carries visible lists")
	}
	if len(snap.RiseSet) == 0 {
		t.Error("suppression dropped rise/set records")
	}
	if snap.Moon == nil {
		t.Error("suppression dropped the moon")
	}
}

func TestComputeSnapshot_NewMoonPhase(t *testing.T) {
	instant := time.Date(2024, 1, 11, 11, 57, 0, 0, time.UTC)
	snap, err := newTestEngine().ComputeSnapshot(context.Background(), 0, 0, instant, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if snap.Moon == nil {
		t.Fatal("moon is nil")
	}
	if f := *snap.Moon.PhaseFraction; f > 0.05 {
		t.Errorf("phase fraction = %.4f at new moon, want < 0.05", f)
	}
	if snap.Moon.PhaseName != "New" {
		t.Errorf("phase name = %q, want New", snap.Moon.PhaseName)
	}
}

func TestComputeSnapshot_InvalidTimestamp(t *testing.T) {
	_, err := newTestEngine().ComputeSnapshot(context.Background(), 0, 0, time.Time{}, DefaultSettings())
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("error = %v, want ErrInvalidTimestamp", err)
	}
}

func TestComputeSnapshot_CatalogUnavailable(t *testing.T) {
	s := DefaultSettings()
	s.CatalogMode = "custom"
	s.CustomCatalog = "/does/not/exist.csv"

	_, err := newTestEngine().ComputeSnapshot(context.Background(), 0, 0, time.Now(), s)
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Errorf("error = %v, want catalog.ErrUnavailable", err)
	}
}

func TestComputeSnapshot_BortleShrinksStars(t *testing.T) {
	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	engine := newTestEngine()

	dark := DefaultSettings()
	dark.CatalogMode = "rich"
	dark.LightPollutionBortle = 1

	city := dark
	city.LightPollutionBortle = 9

	darkSnap, err := engine.ComputeSnapshot(context.Background(), 0, 0, instant, dark)
	if err != nil {
		t.Fatal(err)
	}
	citySnap, err := engine.ComputeSnapshot(context.Background(), 0, 0, instant, city)
	if err != nil {
		t.Fatal(err)
	}

	if len(citySnap.VisibleStars) > len(darkSnap.VisibleStars) {
		t.Errorf("bortle 9 shows %d stars, more than %d under bortle 1",
			len(citySnap.VisibleStars), len(darkSnap.VisibleStars))
	}
}

func TestComputeSnapshot_TerrestrialTimeShiftsInstant(t *testing.T) {
	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	engine := newTestEngine()

	s := DefaultSettings()
	s.TimeScale = TimeScaleTT

	snap, err := engine.ComputeSnapshot(context.Background(), 0, 0, instant, s)
	if err != nil {
		t.Fatal(err)
	}
	if !snap.Instant.Equal(instant.Add(deltaT)) {
		t.Errorf("snapshot instant = %v, want shifted by %v", snap.Instant, deltaT)
	}
}
