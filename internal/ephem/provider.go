// Package ephem provides solar-system position sources for the snapshot
// engine: a builtin analytic source with no network dependency, a
// high-accuracy source backed by downloaded JPL Horizons tables, and the
// mode manager that selects between them with soft fallback.
package ephem

import (
	"errors"
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

// Bodies lists the solar-system bodies a source must answer for.
var Bodies = []string{"sun", "moon", "mercury", "venus", "mars", "jupiter", "saturn"}

// ErrFetchFailed reports that the high-accuracy ephemeris data could not be
// downloaded. Callers fall back to the builtin source; it is never fatal.
var ErrFetchFailed = errors.New("ephemeris fetch failed")

// ErrUnknownBody reports a position query for a body no source knows.
var ErrUnknownBody = errors.New("unknown body")

// Source supplies geocentric equatorial positions for named solar-system
// bodies.
type Source interface {
	// Name returns the source name for display/logging.
	Name() string

	// Position returns the body's equatorial coordinates at time t.
	Position(body string, t time.Time) (astro.Equatorial, error)

	// Available returns true if this source can supply data for the body.
	Available(body string) bool
}

// Mode represents which ephemeris source to use.
type Mode int

const (
	ModeBuiltin      Mode = iota // analytic series, no network dependency
	ModeHighAccuracy             // downloaded Horizons tables, cached on disk
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeBuiltin:
		return "builtin"
	case ModeHighAccuracy:
		return "high-accuracy"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string, defaulting to ModeBuiltin.
func ParseMode(s string) Mode {
	if s == "high-accuracy" || s == "high_accuracy" {
		return ModeHighAccuracy
	}
	return ModeBuiltin
}
