package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfgpkg "github.com/chandrasekarnarayana/night-sky/internal/config"
	"github.com/chandrasekarnarayana/night-sky/internal/ephem"
	"github.com/chandrasekarnarayana/night-sky/internal/logging"
	"github.com/chandrasekarnarayana/night-sky/internal/sky"
)

var rootCmd = &cobra.Command{
	Use:   "night-sky",
	Short: "Terminal sky chart and almanac",
	Long: `Night-sky computes what is visible in the sky for an observer at a
given location and moment: stars, planets, the Moon with its phase,
deep-sky objects, rise/set times, and conjunction or eclipse-window
events. The default command launches the interactive TUI.`,
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .night-sky.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64("lat", 0, "observer latitude in degrees")
	rootCmd.PersistentFlags().Float64("lon", 0, "observer longitude in degrees")
	rootCmd.PersistentFlags().String("city", "", "observer city (overrides lat/lon)")
	rootCmd.PersistentFlags().String("catalog", "default", "star catalog mode (default, rich, custom)")
	rootCmd.PersistentFlags().String("catalog-file", "", "CSV path for the custom catalog mode")
	rootCmd.PersistentFlags().Float64("limiting-magnitude", 6.0, "faintest star magnitude to keep")
	rootCmd.PersistentFlags().Int("bortle", 1, "light pollution level 1-9")
	rootCmd.PersistentFlags().Bool("high-accuracy", false, "use downloaded ephemeris tables")

	bindings := map[string]string{
		"log_level":                   "log-level",
		"observer.lat_deg":            "lat",
		"observer.lon_deg":            "lon",
		"observer.city":               "city",
		"sky.catalog_mode":            "catalog",
		"sky.custom_catalog":          "catalog-file",
		"sky.limiting_magnitude":      "limiting-magnitude",
		"sky.light_pollution_bortle":  "bortle",
		"sky.high_accuracy_ephemeris": "high-accuracy",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".night-sky")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("NIGHT_SKY")
	viper.SetEnvKeyReplacer(cfgpkg.EnvKeyReplacer())
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// buildEngine assembles the snapshot engine from the loaded configuration.
func buildEngine(cfg cfgpkg.Config, logger *logging.Logger) (*sky.Engine, error) {
	if !cfg.Sky.HighAccuracyEphemeris {
		return sky.NewEngine(nil, logger), nil
	}

	cacheDir := cfg.Ephemeris.CacheDir
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		cacheDir = filepath.Join(base, "night-sky")
	}

	fetcher := ephem.NewFetcher(cacheDir, ephem.WithTimeout(cfg.Ephemeris.FetchTimeout))
	mgr := ephem.NewManager(ephem.ModeHighAccuracy, fetcher, cfg.Ephemeris.BaseURL, logger.Named("ephem"))
	return sky.NewEngine(mgr, logger), nil
}
