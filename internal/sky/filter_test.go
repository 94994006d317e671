package sky

import (
	"math"
	"testing"

	"github.com/chandrasekarnarayana/night-sky/internal/catalog"
)

func TestEffectiveLimit(t *testing.T) {
	tests := []struct {
		name     string
		limiting float64
		bortle   int
		want     float64
	}{
		{"pristine sky no penalty", 6.0, 1, 6.0},
		{"inner city", 6.0, 9, 4.4},
		{"mid scale", 6.0, 5, 5.2},
		{"floor at -5", -4.9, 9, -5.0},
		{"bortle below scale clamps to no penalty", 6.0, 0, 6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveLimit(tt.limiting, tt.bortle)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EffectiveLimit(%.1f, %d) = %.4f, want %.4f", tt.limiting, tt.bortle, got, tt.want)
			}
		})
	}
}

func TestFilterCatalog(t *testing.T) {
	entries := []catalog.Entry{
		{ID: 1, Name: "a", Mag: 1.0},
		{ID: 2, Name: "b", Mag: 4.0},
		{ID: 3, Name: "c", Mag: 4.5},
		{ID: 4, Name: "d", Mag: 7.0},
	}

	// Limiting 6.0 under a Bortle 9 sky gives an effective limit of 4.4.
	kept := FilterCatalog(entries, 6.0, 9)
	if len(kept) != 2 {
		t.Fatalf("retained %d entries, want 2", len(kept))
	}
	if kept[0].Name != "a" || kept[1].Name != "b" {
		t.Errorf("retained %q, %q; want a, b", kept[0].Name, kept[1].Name)
	}
}

func TestFilterCatalog_MonotoneInBortle(t *testing.T) {
	stars, err := catalog.Load(catalog.ModeRich, "")
	if err != nil {
		t.Fatal(err)
	}

	prev := len(stars) + 1
	for bortle := 1; bortle <= 9; bortle++ {
		n := len(FilterCatalog(stars, 6.0, bortle))
		if n > prev {
			t.Errorf("bortle %d retains %d entries, more than %d at bortle %d", bortle, n, prev, bortle-1)
		}
		prev = n
	}
}
