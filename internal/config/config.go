// Package config loads runtime configuration for the night-sky commands
// from .night-sky.yaml, NIGHT_SKY_* environment variables, and CLI flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
	"github.com/chandrasekarnarayana/night-sky/internal/catalog"
	"github.com/chandrasekarnarayana/night-sky/internal/sky"
)

// ObserverConfig locates the observer. City, when set, wins over the raw
// coordinates and is resolved against the embedded city list.
type ObserverConfig struct {
	LatDeg float64 `mapstructure:"lat_deg"`
	LonDeg float64 `mapstructure:"lon_deg"`
	City   string  `mapstructure:"city"`
}

// EphemerisConfig controls the high-accuracy ephemeris source.
type EphemerisConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	CacheDir     string        `mapstructure:"cache_dir"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// Config holds all runtime configuration for a night-sky session.
type Config struct {
	Observer        ObserverConfig  `mapstructure:"observer"`
	Sky             sky.Settings    `mapstructure:"sky"`
	Ephemeris       EphemerisConfig `mapstructure:"ephemeris"`
	LogLevel        string          `mapstructure:"log_level"`
	RefreshInterval time.Duration   `mapstructure:"refresh_interval"`
}

// EnvKeyReplacer maps nested config keys (observer.lat_deg) onto their
// NIGHT_SKY_* environment variable names.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	defaults := sky.DefaultSettings()

	viper.SetDefault("observer.lat_deg", 0.0)
	viper.SetDefault("observer.lon_deg", 0.0)
	viper.SetDefault("observer.city", "")
	viper.SetDefault("sky.limiting_magnitude", defaults.LimitingMagnitude)
	viper.SetDefault("sky.apply_refraction", defaults.ApplyRefraction)
	viper.SetDefault("sky.catalog_mode", defaults.CatalogMode)
	viper.SetDefault("sky.custom_catalog", "")
	viper.SetDefault("sky.time_scale", defaults.TimeScale)
	viper.SetDefault("sky.twilight_sun_alt_deg", defaults.TwilightSunAltDeg)
	viper.SetDefault("sky.light_pollution_bortle", defaults.LightPollutionBortle)
	viper.SetDefault("sky.high_accuracy_ephemeris", defaults.HighAccuracyEphemeris)
	viper.SetDefault("sky.apply_precession_nutation", defaults.ApplyPrecessionNutation)
	viper.SetDefault("sky.apply_aberration", defaults.ApplyAberration)
	viper.SetDefault("sky.conjunction_max_sep_deg", defaults.ConjunctionMaxSepDeg)
	viper.SetDefault("sky.eclipse_max_sep_deg", defaults.EclipseMaxSepDeg)
	viper.SetDefault("sky.rise_set_step", defaults.RiseSetStep)
	viper.SetDefault("ephemeris.base_url", "")
	viper.SetDefault("ephemeris.cache_dir", "")
	viper.SetDefault("ephemeris.fetch_timeout", 30*time.Second)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("refresh_interval", time.Minute)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode configuration: %w", err)
	}
	return cfg, nil
}

// ResolveObserver turns the observer configuration into coordinates,
// looking up the city name when one is given.
func (c Config) ResolveObserver() (astro.Observer, error) {
	if c.Observer.City == "" {
		return astro.Observer{LatDeg: c.Observer.LatDeg, LonDeg: c.Observer.LonDeg}, nil
	}
	city, ok := catalog.FindCity(c.Observer.City)
	if !ok {
		return astro.Observer{}, fmt.Errorf("unknown city %q", c.Observer.City)
	}
	return astro.Observer{LatDeg: city.LatDeg, LonDeg: city.LonDeg, Name: city.Name}, nil
}
