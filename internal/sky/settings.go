package sky

import (
	"errors"
	"time"
)

// ErrInvalidTimestamp reports a snapshot request with an unusable instant.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Time scales accepted by Settings.TimeScale.
const (
	TimeScaleUTC = "utc"
	TimeScaleTT  = "tt"
)

// deltaT is the fixed TT−UTC offset (32.184s + 37 leap seconds) applied
// when the terrestrial time scale is selected.
const deltaT = 69184 * time.Millisecond

// Settings controls one snapshot computation.
type Settings struct {
	// LimitingMagnitude is the faintest star magnitude retained before the
	// light-pollution penalty is applied.
	LimitingMagnitude float64 `mapstructure:"limiting_magnitude"`

	// ApplyRefraction enables the near-horizon altitude correction.
	ApplyRefraction bool `mapstructure:"apply_refraction"`

	// CatalogMode selects the star catalog: default, rich, or custom.
	CatalogMode string `mapstructure:"catalog_mode"`

	// CustomCatalog is the CSV path used when CatalogMode is custom.
	CustomCatalog string `mapstructure:"custom_catalog"`

	// TimeScale is utc or tt.
	TimeScale string `mapstructure:"time_scale"`

	// TwilightSunAltDeg suppresses the visible lists when the Sun's
	// corrected altitude exceeds it.
	TwilightSunAltDeg float64 `mapstructure:"twilight_sun_alt_deg"`

	// LightPollutionBortle is the 1..9 sky-brightness class.
	LightPollutionBortle int `mapstructure:"light_pollution_bortle"`

	// HighAccuracyEphemeris requests the downloaded ephemeris tables.
	HighAccuracyEphemeris bool `mapstructure:"high_accuracy_ephemeris"`

	// ApplyPrecessionNutation and ApplyAberration correct catalog star
	// coordinates from J2000 to the observation epoch.
	ApplyPrecessionNutation bool `mapstructure:"apply_precession_nutation"`
	ApplyAberration         bool `mapstructure:"apply_aberration"`

	// ConjunctionMaxSepDeg and EclipseMaxSepDeg are the event-detection
	// thresholds in degrees.
	ConjunctionMaxSepDeg float64 `mapstructure:"conjunction_max_sep_deg"`
	EclipseMaxSepDeg     float64 `mapstructure:"eclipse_max_sep_deg"`

	// RiseSetStep is the sampling interval of the rise/set search.
	RiseSetStep time.Duration `mapstructure:"rise_set_step"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LimitingMagnitude:    6.0,
		ApplyRefraction:      true,
		CatalogMode:          "default",
		TimeScale:            TimeScaleUTC,
		TwilightSunAltDeg:    -6.0,
		LightPollutionBortle: 1,
		ConjunctionMaxSepDeg: 5.0,
		EclipseMaxSepDeg:     8.0,
		RiseSetStep:          10 * time.Minute,
	}
}

// NormalizeTime converts the input instant to UTC on the selected time
// scale. A zero time is the one unusable input and fails with
// ErrInvalidTimestamp; any located time converts through its own location.
func NormalizeTime(t time.Time, scale string) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, ErrInvalidTimestamp
	}
	t = t.UTC()
	if scale == TimeScaleTT {
		t = t.Add(deltaT)
	}
	return t, nil
}
