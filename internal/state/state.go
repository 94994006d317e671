// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/sky"
)

// ChangeType represents the type of sky change event.
type ChangeType string

const (
	ChangeBodyRisen ChangeType = "BODY_RISEN"
	ChangeBodySet   ChangeType = "BODY_SET"
	ChangeSkyEvent  ChangeType = "SKY_EVENT"
	ChangeMoonPhase ChangeType = "MOON_PHASE"
	ChangeTwilight  ChangeType = "TWILIGHT"
)

// Change records a difference between consecutive snapshots.
type Change struct {
	Type      ChangeType `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
	Body      string     `json:"body,omitempty"`
	Detail    string     `json:"detail,omitempty"`
}

// Manager holds the latest snapshot and a log of changes between refreshes
// with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	current         *sky.Snapshot
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	// Change log (ring buffer)
	changes      []Change
	maxChanges   int
	changeWrite  int
	prevPhase    string
	prevDaylight bool
	havePrev     bool

	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxChanges      int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxChanges:      50,
		RefreshInterval: time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxChanges := cfg.MaxChanges
	if maxChanges <= 0 {
		maxChanges = 50
	}
	return &Manager{
		maxChanges:      maxChanges,
		changes:         make([]Change, 0, maxChanges),
		refreshInterval: cfg.RefreshInterval,
	}
}

// Update atomically replaces the current snapshot, recording changes
// relative to the previous one. A nil snapshot records only the error.
func (m *Manager) Update(snap *sky.Snapshot, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration

	if snap == nil {
		return
	}

	m.detectChanges(snap)
	m.current = snap
}

// detectChanges compares the new snapshot with the previous one and logs
// horizon crossings, fresh sky events, phase changes, and day/night flips.
func (m *Manager) detectChanges(snap *sky.Snapshot) {
	now := time.Now()

	if m.current != nil {
		prev := visibleSet(m.current)
		next := visibleSet(snap)

		for body := range next {
			if !prev[body] {
				m.addChange(Change{Type: ChangeBodyRisen, Timestamp: now, Body: body})
			}
		}
		for body := range prev {
			if !next[body] {
				m.addChange(Change{Type: ChangeBodySet, Timestamp: now, Body: body})
			}
		}

		prevEvents := eventSet(m.current)
		for _, ev := range snap.Events {
			if !prevEvents[eventKey(ev)] {
				m.addChange(Change{Type: ChangeSkyEvent, Timestamp: now, Detail: eventKey(ev)})
			}
		}
	}

	if snap.Moon != nil {
		if m.havePrev && snap.Moon.PhaseName != m.prevPhase {
			m.addChange(Change{
				Type:      ChangeMoonPhase,
				Timestamp: now,
				Body:      "moon",
				Detail:    snap.Moon.PhaseName,
			})
		}
		m.prevPhase = snap.Moon.PhaseName
	}

	if m.havePrev && snap.TwilightSuppressed != m.prevDaylight {
		detail := "night"
		if snap.TwilightSuppressed {
			detail = "daylight"
		}
		m.addChange(Change{Type: ChangeTwilight, Timestamp: now, Detail: detail})
	}
	m.prevDaylight = snap.TwilightSuppressed
	m.havePrev = true
}

func visibleSet(snap *sky.Snapshot) map[string]bool {
	set := make(map[string]bool, len(snap.VisiblePlanets))
	for _, b := range snap.VisiblePlanets {
		set[b.Name] = true
	}
	return set
}

func eventSet(snap *sky.Snapshot) map[string]bool {
	set := make(map[string]bool, len(snap.Events))
	for _, ev := range snap.Events {
		set[eventKey(ev)] = true
	}
	return set
}

func eventKey(ev sky.Event) string {
	if ev.Kind == sky.EventConjunction {
		return ev.Kind + ":" + ev.BodyA + "/" + ev.BodyB
	}
	return ev.Kind + ":" + ev.EclipseKind
}

// addChange adds a change to the ring buffer.
func (m *Manager) addChange(c Change) {
	if len(m.changes) < m.maxChanges {
		m.changes = append(m.changes, c)
	} else {
		m.changes[m.changeWrite] = c
		m.changeWrite = (m.changeWrite + 1) % m.maxChanges
	}
}

// View is an immutable view of current state.
type View struct {
	Snapshot        *sky.Snapshot
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	Changes         []Change
}

// View returns a consistent view of current state.
func (m *Manager) View() View {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return View{
		Snapshot:        m.current,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		Changes:         m.changesOrdered(),
	}
}

// changesOrdered returns changes in chronological order.
func (m *Manager) changesOrdered() []Change {
	if len(m.changes) == 0 {
		return nil
	}

	if len(m.changes) < m.maxChanges {
		result := make([]Change, len(m.changes))
		copy(result, m.changes)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Change, m.maxChanges)
	for i := 0; i < m.maxChanges; i++ {
		idx := (m.changeWrite + i) % m.maxChanges
		result[i] = m.changes[idx]
	}
	return result
}

// RecentChanges returns the last n changes.
func (m *Manager) RecentChanges(n int) []Change {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.changesOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one snapshot has been computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
