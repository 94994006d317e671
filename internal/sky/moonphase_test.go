package sky

import (
	"testing"
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

func TestMoonPhase_CalendarFixtures(t *testing.T) {
	tests := []struct {
		name       string
		time       time.Time
		wantLow    float64
		wantHigh   float64
		wantWaxing bool
	}{
		{"new moon 2024-01-11", time.Date(2024, 1, 11, 11, 57, 0, 0, time.UTC), 0, 0.05, true},
		{"full moon 2024-01-25", time.Date(2024, 1, 25, 17, 54, 0, 0, time.UTC), 0.95, 1, true},
		{"waning 2024-01-29", time.Date(2024, 1, 29, 12, 0, 0, 0, time.UTC), 0.5, 1, false},
		{"waxing 2024-01-18", time.Date(2024, 1, 18, 12, 0, 0, 0, time.UTC), 0.1, 0.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sun := astro.SunPosition(tt.time)
			moon := astro.MoonPosition(tt.time)
			fraction, waxing := MoonPhase(sun, moon)
			if fraction < tt.wantLow || fraction > tt.wantHigh {
				t.Errorf("fraction = %.4f, want in [%.2f, %.2f]", fraction, tt.wantLow, tt.wantHigh)
			}
			if waxing != tt.wantWaxing {
				t.Errorf("waxing = %v, want %v", waxing, tt.wantWaxing)
			}
		})
	}
}

func TestMoonPhase_FractionRange(t *testing.T) {
	for day := 0; day < 30; day++ {
		at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		fraction, _ := MoonPhase(astro.SunPosition(at), astro.MoonPosition(at))
		if fraction < 0 || fraction > 1 {
			t.Errorf("fraction = %.4f on %s, out of [0,1]", fraction, at.Format("2006-01-02"))
		}
	}
}

func TestPhaseName(t *testing.T) {
	tests := []struct {
		fraction float64
		waxing   bool
		want     string
	}{
		{0.0, true, "New"},
		{0.01, true, "New"},
		{0.01, false, "New"},
		{0.3, true, "Waxing crescent"},
		{0.3, false, "Waning crescent"},
		{0.5, true, "First quarter"},
		{0.5, false, "Last quarter"},
		{0.7, true, "Waxing gibbous"},
		{0.7, false, "Waning gibbous"},
		{0.99, true, "Full"},
		{0.99, false, "Full"},
		{1.0, true, "Full"},
	}

	for _, tt := range tests {
		if got := PhaseName(tt.fraction, tt.waxing); got != tt.want {
			t.Errorf("PhaseName(%.2f, %v) = %q, want %q", tt.fraction, tt.waxing, got, tt.want)
		}
	}
}
