package ephem

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

// fakeHorizons serves generated observer tables keyed by the COMMAND query
// parameter, mimicking the Horizons JSON envelope.
func fakeHorizons(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cmd := strings.Trim(r.URL.Query().Get("COMMAND"), "'")
		start, err := time.Parse("2006-01-02 15:04", strings.Trim(r.URL.Query().Get("START_TIME"), "'"))
		if err != nil {
			http.Error(w, "bad START_TIME", http.StatusBadRequest)
			return
		}
		stop, err := time.Parse("2006-01-02 15:04", strings.Trim(r.URL.Query().Get("STOP_TIME"), "'"))
		if err != nil {
			http.Error(w, "bad STOP_TIME", http.StatusBadRequest)
			return
		}

		// Deterministic synthetic ephemeris: RA drifts linearly from a
		// per-body offset, Dec stays fixed.
		base := 0.0
		for _, c := range cmd {
			base += float64(c)
		}
		base = math.Mod(base, 360)

		var rows strings.Builder
		for ts := start; !ts.After(stop); ts = ts.Add(tableStep) {
			hours := ts.Sub(start).Hours()
			ra := math.Mod(base+0.5*hours, 360)
			fmt.Fprintf(&rows, " %s *   %10.5f %10.5f\n", ts.Format("2006-Jan-02 15:04"), ra, 12.0)
		}

		result := "header\n$$SOE\n" + rows.String() + "$$EOE\nfooter"
		fmt.Fprintf(w, `{"result": %q, "signature": {"source": "test"}}`, result)
	}))
}

func TestOpenHorizons(t *testing.T) {
	srv := fakeHorizons(t)
	defer srv.Close()

	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	src, err := OpenHorizons(context.Background(), NewFetcher(t.TempDir()), srv.URL, instant)
	if err != nil {
		t.Fatalf("OpenHorizons() error = %v", err)
	}

	if src.Name() != "horizons" {
		t.Errorf("Name() = %q", src.Name())
	}
	if !src.Covers(instant) || !src.Covers(instant.Add(12*time.Hour)) || !src.Covers(instant.Add(-12*time.Hour)) {
		t.Error("table span does not cover the rise/set search window")
	}

	for _, body := range Bodies {
		if !src.Available(body) {
			t.Errorf("body %s unavailable", body)
		}
		eq, err := src.Position(body, instant.Add(37*time.Minute))
		if err != nil {
			t.Errorf("Position(%s) error = %v", body, err)
			continue
		}
		if eq.RADeg < 0 || eq.RADeg >= 360 || eq.DecDeg != 12.0 {
			t.Errorf("Position(%s) = %+v", body, eq)
		}
	}
}

func TestHorizonsSource_Interpolation(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	src := &HorizonsSource{
		tables: map[string][]tableSample{
			"mars": {
				{t: base, eq: astro.Equatorial{RADeg: 10, DecDeg: 0}},
				{t: base.Add(tableStep), eq: astro.Equatorial{RADeg: 11, DecDeg: 1}},
			},
			"moon": {
				{t: base, eq: astro.Equatorial{RADeg: 359.5, DecDeg: 0}},
				{t: base.Add(tableStep), eq: astro.Equatorial{RADeg: 0.5, DecDeg: 0}},
			},
		},
		start: base,
		end:   base.Add(tableStep),
	}

	eq, err := src.Position("mars", base.Add(tableStep/2))
	if err != nil {
		t.Fatalf("Position() error = %v", err)
	}
	if math.Abs(eq.RADeg-10.5) > 1e-9 || math.Abs(eq.DecDeg-0.5) > 1e-9 {
		t.Errorf("midpoint = %+v, want (10.5, 0.5)", eq)
	}

	// RA interpolation must take the short way across the 0/360 seam.
	eq, err = src.Position("moon", base.Add(tableStep/2))
	if err != nil {
		t.Fatalf("Position() error = %v", err)
	}
	if math.Abs(eq.RADeg) > 1e-9 && math.Abs(eq.RADeg-360) > 1e-9 {
		t.Errorf("seam midpoint RA = %.5f, want 0", eq.RADeg)
	}

	if _, err := src.Position("mars", base.Add(-time.Hour)); err == nil {
		t.Error("expected error outside table span")
	}
	if _, err := src.Position("vulcan", base); err == nil {
		t.Error("expected error for unknown body")
	}
}

func TestParseTableLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantRA  float64
		wantDec float64
		wantErr bool
	}{
		{"plain", "2024-Jan-01 00:00     281.33174 -23.05620", 281.33174, -23.05620, false},
		{"with flags", "2024-Jan-01 00:00 *m  281.33174 -23.05620", 281.33174, -23.05620, false},
		{"too short", "2024-Jan-01 00:00", 0, 0, true},
		{"no numbers", "2024-Jan-01 00:00 * x y", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := parseTableLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.eq.RADeg != tt.wantRA || s.eq.DecDeg != tt.wantDec {
				t.Errorf("parsed (%.5f, %.5f)", s.eq.RADeg, s.eq.DecDeg)
			}
		})
	}
}
