// Package catalog provides the typed star, deep-sky, and city catalogs the
// snapshot engine consumes: embedded default and rich star sets, CSV custom
// catalogs, Messier/NGC markers, fixed meteor-shower radiants, and a
// reference city list for observer lookup.
package catalog

import (
	"errors"
	"fmt"
)

// Entry is a catalog star record. Coordinates are J2000 degrees.
type Entry struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
	Mag    float64 `json:"mag"`
}

// ErrUnavailable reports that no star catalog could be loaded. A snapshot
// cannot be produced without one.
var ErrUnavailable = errors.New("star catalog unavailable")

// Mode selects which star catalog backs the engine.
type Mode int

const (
	ModeDefault Mode = iota // embedded bright-star set
	ModeRich                // embedded extended set
	ModeCustom              // CSV file supplied by the caller
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeRich:
		return "rich"
	case ModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseMode parses a catalog mode string, defaulting to ModeDefault.
func ParseMode(s string) Mode {
	switch s {
	case "rich":
		return ModeRich
	case "custom":
		return ModeCustom
	default:
		return ModeDefault
	}
}

// Load returns the star catalog for the given mode. customPath is consulted
// only for ModeCustom. The returned slice is freshly allocated for custom
// catalogs and shared (read-only by contract) for the embedded sets.
func Load(mode Mode, customPath string) ([]Entry, error) {
	switch mode {
	case ModeRich:
		return richStars, nil
	case ModeCustom:
		if customPath == "" {
			return nil, fmt.Errorf("%w: custom mode without a path", ErrUnavailable)
		}
		entries, err := LoadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: %s has no usable rows", ErrUnavailable, customPath)
		}
		return entries, nil
	default:
		return defaultStars(), nil
	}
}
