package astro

import (
	"math"
	"testing"
	"time"
)

func TestSunPosition_Equinox(t *testing.T) {
	// March equinox 2024 was at 03:06 UTC on March 20. The Sun's
	// declination crosses zero and its RA is near 0/360.
	at := time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC)
	sun := SunPosition(at)

	if math.Abs(sun.DecDeg) > 0.1 {
		t.Errorf("equinox declination = %.4f, want ~0", sun.DecDeg)
	}
	ra := sun.RADeg
	if ra > 180 {
		ra -= 360
	}
	if math.Abs(ra) > 0.2 {
		t.Errorf("equinox RA = %.4f, want ~0/360", sun.RADeg)
	}
}

func TestSunPosition_Solstices(t *testing.T) {
	tests := []struct {
		name    string
		time    time.Time
		wantDec float64
	}{
		{"june solstice", time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC), 23.436},
		{"december solstice", time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC), -23.436},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sun := SunPosition(tt.time)
			if math.Abs(sun.DecDeg-tt.wantDec) > 0.05 {
				t.Errorf("declination = %.4f, want %.3f", sun.DecDeg, tt.wantDec)
			}
		})
	}
}

func TestSunEclipticLongitude_Seasons(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want float64
	}{
		{"march equinox", time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC), 0},
		{"june solstice", time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC), 90},
		{"september equinox", time.Date(2024, 9, 22, 12, 44, 0, 0, time.UTC), 180},
		{"december solstice", time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC), 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lon := SunEclipticLongitude(tt.time)
			diff := math.Abs(math.Mod(lon-tt.want+540, 360) - 180)
			if diff > 0.1 {
				t.Errorf("ecliptic longitude = %.4f, want %.1f", lon, tt.want)
			}
		})
	}
}

func TestMeanObliquity(t *testing.T) {
	// Obliquity drifts slowly around 23.44 degrees in the current era.
	eps := MeanObliquity(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if eps < 23.4 || eps > 23.5 {
		t.Errorf("obliquity = %.4f, want ~23.44", eps)
	}
}
