package astro

import (
	"math"
	"testing"
	"time"
)

func timeDate2024() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestRefractAltitude(t *testing.T) {
	tests := []struct {
		name    string
		alt     float64
		want    float64
		tol     float64
	}{
		{"horizon lift is about half a degree", 0, 0.483, 0.02},
		{"mid altitude barely moves", 45, 45.0169, 0.005},
		{"below model range untouched", -5, -5, 0},
		{"above model range untouched", 90.5, 90.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RefractAltitude(tt.alt)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("RefractAltitude(%.1f) = %.4f, want %.4f", tt.alt, got, tt.want)
			}
		})
	}
}

func TestRefractAltitude_NeverDecreases(t *testing.T) {
	for alt := -0.99; alt < 90; alt += 0.25 {
		if got := RefractAltitude(alt); got < alt {
			t.Fatalf("RefractAltitude(%.2f) = %.4f decreased the altitude", alt, got)
		}
	}
}

func TestRefractAltitude_CorrectionShrinksWithAltitude(t *testing.T) {
	prev := RefractAltitude(0) - 0
	for alt := 1.0; alt <= 60; alt += 1 {
		corr := RefractAltitude(alt) - alt
		if corr > prev+1e-9 {
			t.Fatalf("correction grew from %.5f to %.5f at alt %.1f", prev, corr, alt)
		}
		prev = corr
	}
}

func TestPrecess_DriftMagnitude(t *testing.T) {
	// Precession moves equatorial coordinates by roughly 50 arcsec per
	// year; over 24 years the shift should be a fraction of a degree,
	// not zero and not huge.
	at := timeDate2024()
	eq := Equatorial{RADeg: 30, DecDeg: 20}
	moved := Precess(eq, at)

	sep := AngularSeparation(eq, moved)
	if sep < 0.1 || sep > 1.0 {
		t.Errorf("precession displacement = %.4f deg, want within (0.1, 1.0)", sep)
	}
}

func TestAberrate_BoundedByConstant(t *testing.T) {
	at := timeDate2024()
	eq := Equatorial{RADeg: 100, DecDeg: 10}
	moved := Aberrate(eq, at)

	sep := AngularSeparation(eq, moved)
	if sep > 2.5*aberrationConstDeg {
		t.Errorf("aberration displacement = %.6f deg, exceeds bound", sep)
	}
}
