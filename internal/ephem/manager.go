package ephem

import (
	"context"
	"sync"
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/logging"
)

// Manager selects the active ephemeris source for a snapshot computation.
// Source selection is a critical section: concurrent snapshot computations
// serialize on Acquire so the cached table source is never swapped mid-use.
type Manager struct {
	mu      sync.Mutex
	mode    Mode
	fetcher *Fetcher
	baseURL string
	builtin Source
	log     *logging.Logger

	// Cached high-accuracy source, per manager instance rather than
	// process-wide so independent engines do not interfere.
	horizons *HorizonsSource
}

// NewManager creates a manager in the given mode. fetcher may be nil when
// mode is ModeBuiltin; baseURL overrides the Horizons endpoint when
// non-empty.
func NewManager(mode Mode, fetcher *Fetcher, baseURL string, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{
		mode:    mode,
		fetcher: fetcher,
		baseURL: baseURL,
		builtin: NewBuiltinSource(),
		log:     log,
	}
}

// Mode returns the configured mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

// Acquire selects the ephemeris source for a computation centered on
// instant and returns it with a release function. All position queries made
// before calling release use the selected source. In high-accuracy mode a
// missing or stale table set is fetched (or reused from the disk cache);
// any failure logs a warning and falls back to the builtin source; the
// caller observes only the source name. release must be called on every
// exit path.
func (m *Manager) Acquire(ctx context.Context, instant time.Time) (Source, func()) {
	m.mu.Lock()
	release := m.mu.Unlock

	if m.mode != ModeHighAccuracy || m.fetcher == nil {
		return m.builtin, release
	}

	if m.horizons == nil || !m.horizons.Covers(instant) {
		src, err := OpenHorizons(ctx, m.fetcher, m.baseURL, instant)
		if err != nil {
			m.log.Warn("high-accuracy ephemeris unavailable, using builtin: %v", err)
			m.horizons = nil
			return m.builtin, release
		}
		m.horizons = src
	}

	return m.horizons, release
}
