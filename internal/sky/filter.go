package sky

import (
	"math"

	"github.com/chandrasekarnarayana/night-sky/internal/catalog"
)

// EffectiveLimit returns the limiting magnitude after the light-pollution
// penalty: 0.2 magnitudes per Bortle class above 1, floored at -5.
func EffectiveLimit(limitingMag float64, bortle int) float64 {
	penalty := 0.2 * math.Max(0, float64(bortle-1))
	return math.Max(-5.0, limitingMag-penalty)
}

// FilterCatalog retains entries at or brighter than the effective limit.
// Catalog order is preserved.
func FilterCatalog(entries []catalog.Entry, limitingMag float64, bortle int) []catalog.Entry {
	limit := EffectiveLimit(limitingMag, bortle)
	kept := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Mag <= limit {
			kept = append(kept, e)
		}
	}
	return kept
}
