package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	cfgpkg "github.com/chandrasekarnarayana/night-sky/internal/config"
	"github.com/chandrasekarnarayana/night-sky/internal/logging"
)

var (
	snapshotAt  string
	snapshotOut string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Compute a sky snapshot and write it as JSON",
	Long: `Compute the sky for the configured observer at a given instant and
write the result as JSON, without starting the interactive chart.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotAt, "at", "", "instant to compute, RFC 3339 (default: now)")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "output", "o", "-", "output file, or - for stdout")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfg, err := cfgpkg.Load()
	if err != nil {
		return err
	}
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	instant := time.Now().UTC()
	if snapshotAt != "" {
		instant, err = time.Parse(time.RFC3339, snapshotAt)
		if err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
	}

	observer, err := cfg.ResolveObserver()
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	snap, err := engine.ComputeSnapshot(cmd.Context(), observer.LatDeg, observer.LonDeg, instant, cfg.Sky)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	if snapshotOut == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(snapshotOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", snapshotOut, err)
	}
	return nil
}
