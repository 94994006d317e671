// Package sky computes snapshots of the visible sky for an observer at a
// geographic location and instant: catalog stars above the horizon,
// solar-system bodies, the Moon with its phase, deep-sky objects,
// rise/set/culmination times, and close-approach events.
package sky

import "time"

// Star is a catalog star projected into the observer's horizon frame.
type Star struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	RADeg     float64 `json:"ra_deg"`
	DecDeg    float64 `json:"dec_deg"`
	Magnitude float64 `json:"magnitude"`
	AltDeg    float64 `json:"alt_deg"`
	AzDeg     float64 `json:"az_deg"`
}

// Body is a solar-system body in the horizon frame. The phase fields are
// populated only for the Moon.
type Body struct {
	Name   string  `json:"name"`
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
	AltDeg float64 `json:"alt_deg"`
	AzDeg  float64 `json:"az_deg"`

	PhaseFraction *float64 `json:"phase_fraction,omitempty"`
	PhaseName     string   `json:"phase_name,omitempty"`
	Waxing        *bool    `json:"waxing,omitempty"`
}

// DeepSkyObject is a deep-sky catalog object or meteor-shower radiant in
// the horizon frame.
type DeepSkyObject struct {
	Name   string  `json:"name"`
	Type   string  `json:"obj_type"`
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
	AltDeg float64 `json:"alt_deg"`
	AzDeg  float64 `json:"az_deg"`
}

// RiseSetRecord holds the horizon crossings of one body over the ±12h
// search window. Rise and Set are nil for circumpolar or never-rising
// geometry.
type RiseSetRecord struct {
	BodyName          string     `json:"body_name"`
	Rise              *time.Time `json:"rise,omitempty"`
	Set               *time.Time `json:"set,omitempty"`
	CulminationAltDeg float64    `json:"culmination_alt_deg"`
}

// Event kinds.
const (
	EventConjunction   = "conjunction"
	EventEclipseWindow = "eclipse_window"
)

// Eclipse window kinds.
const (
	EclipseSolar = "solar"
	EclipseLunar = "lunar"
)

// Event is a detected sky event: a conjunction between two named bodies,
// or a coarse solar/lunar eclipse-risk window.
type Event struct {
	Kind          string  `json:"kind"`
	BodyA         string  `json:"body_a,omitempty"`
	BodyB         string  `json:"body_b,omitempty"`
	EclipseKind   string  `json:"eclipse_kind,omitempty"`
	SeparationDeg float64 `json:"separation_deg"`
}

// Snapshot is the immutable result of one computation. The visible lists
// are cleared by twilight suppression; rise/set records and events are
// always computed from the unsuppressed sets.
type Snapshot struct {
	LatDeg  float64   `json:"lat_deg"`
	LonDeg  float64   `json:"lon_deg"`
	Instant time.Time `json:"instant"`

	VisibleStars   []Star          `json:"visible_stars"`
	VisiblePlanets []Body          `json:"visible_planets"`
	Moon           *Body           `json:"moon,omitempty"`
	DeepSky        []DeepSkyObject `json:"deep_sky_objects"`
	RiseSet        []RiseSetRecord `json:"rise_set"`
	Events         []Event         `json:"events"`

	SunAltDeg          float64 `json:"sun_alt_deg"`
	TwilightSuppressed bool    `json:"twilight_suppressed"`
	EphemerisSource    string  `json:"ephemeris_source"`
}
