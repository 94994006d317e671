package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chandrasekarnarayana/night-sky/internal/catalog"
	cfgpkg "github.com/chandrasekarnarayana/night-sky/internal/config"
	"github.com/chandrasekarnarayana/night-sky/internal/logging"
	"github.com/chandrasekarnarayana/night-sky/internal/sky"
	"github.com/chandrasekarnarayana/night-sky/internal/state"
	"github.com/chandrasekarnarayana/night-sky/internal/ui"
)

// runTUI is the default command: it resolves the observer, builds the
// engine, and hands control to the bubbletea program until the user quits.
func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := cfgpkg.Load()
	if err != nil {
		return err
	}
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	observer, err := cfg.ResolveObserver()
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	stateCfg := state.DefaultConfig()
	if cfg.RefreshInterval > 0 {
		stateCfg.RefreshInterval = cfg.RefreshInterval
	}
	stateMgr := state.NewManager(stateCfg)

	compute := func(ctx context.Context, instant time.Time) (*sky.Snapshot, error) {
		return engine.ComputeSnapshot(ctx, observer.LatDeg, observer.LonDeg, instant, cfg.Sky)
	}

	model := ui.New(stateMgr, compute)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Watch a custom catalog for edits and recompute on change.
	if cfg.Sky.CatalogMode == "custom" && cfg.Sky.CustomCatalog != "" {
		watcher, err := catalog.NewWatcher(cfg.Sky.CustomCatalog)
		if err != nil {
			logger.Warn("catalog watch unavailable: %v", err)
		} else {
			if err := watcher.Start(); err != nil {
				logger.Warn("catalog watch unavailable: %v", err)
			} else {
				defer watcher.Stop()
				go func() {
					for range watcher.Reloads {
						p.Send(ui.CatalogChangedMsg{})
					}
				}()
			}
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
