package ephem

import (
	"fmt"
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

// BuiltinSource computes positions from the analytic series in the astro
// package. It needs no network or disk and is the default and the fallback
// when the high-accuracy tables are unavailable.
type BuiltinSource struct{}

// NewBuiltinSource returns the analytic source.
func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

// Name implements Source.
func (s *BuiltinSource) Name() string {
	return "builtin"
}

// Position implements Source.
func (s *BuiltinSource) Position(body string, t time.Time) (astro.Equatorial, error) {
	switch body {
	case "sun":
		return astro.SunPosition(t), nil
	case "moon":
		return astro.MoonPosition(t), nil
	}
	eq, err := astro.PlanetPosition(body, t)
	if err != nil {
		return astro.Equatorial{}, fmt.Errorf("%w: %q", ErrUnknownBody, body)
	}
	return eq, nil
}

// Available implements Source.
func (s *BuiltinSource) Available(body string) bool {
	if body == "sun" || body == "moon" {
		return true
	}
	for _, p := range astro.Planets {
		if p == body {
			return true
		}
	}
	return false
}
