// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chandrasekarnarayana/night-sky/internal/sky"
	"github.com/chandrasekarnarayana/night-sky/internal/state"
	"github.com/chandrasekarnarayana/night-sky/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewChart ViewMode = iota
	ViewAlmanac
	ViewEvents
)

// ComputeFunc produces a fresh snapshot for the current wall-clock time.
type ComputeFunc func(ctx context.Context, instant time.Time) (*sky.Snapshot, error)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// RefreshMsg triggers a snapshot recomputation.
	RefreshMsg time.Time

	// SnapshotMsg signals a new snapshot is available.
	SnapshotMsg struct {
		View state.View
	}

	// CatalogChangedMsg signals the custom catalog file changed on disk.
	CatalogChangedMsg struct{}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state   *state.Manager
	compute ComputeFunc

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int

	// Sub-model
	chart ChartModel

	// Data view (updated on SnapshotMsg)
	view state.View
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, compute ComputeFunc) Model {
	return Model{
		state:    stateMgr,
		compute:  compute,
		viewMode: ViewChart,
		chart:    NewChartModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.computeCmd(),
		m.refreshCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "s":
			m.viewMode = ViewChart
		case "2", "a":
			m.viewMode = ViewAlmanac
		case "3", "e":
			m.viewMode = ViewEvents

		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		case "r":
			m.statusMsg = "Recomputing..."
			cmds = append(cmds, m.computeCmd())

		default:
			if m.viewMode == ViewChart {
				var cmd tea.Cmd
				m.chart, cmd = m.chart.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~7 lines, tabs and footer ~4.
		contentHeight := msg.Height - 11
		m.chart = m.chart.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.animTick++
		var cmd tea.Cmd
		m.chart, cmd = m.chart.Update(msg)
		cmds = append(cmds, cmd)

	case RefreshMsg:
		cmds = append(cmds, m.computeCmd(), m.refreshCmd())

	case CatalogChangedMsg:
		m.statusMsg = "Catalog changed, recomputing..."
		cmds = append(cmds, m.computeCmd())

	case SnapshotMsg:
		m.view = msg.View
		m.statusMsg = ""
		m.chart = m.chart.UpdateData(m.view)

	case ErrorMsg:
		m.statusMsg = "ERROR: " + msg.Error.Error()
	}

	return m, tea.Batch(cmds...)
}

// computeCmd runs one snapshot computation off the UI goroutine.
func (m Model) computeCmd() tea.Cmd {
	stateMgr, compute := m.state, m.compute
	return func() tea.Msg {
		start := time.Now()
		snap, err := compute(context.Background(), time.Now())
		stateMgr.Update(snap, time.Since(start), err)
		if err != nil {
			return ErrorMsg{Error: err}
		}
		return SnapshotMsg{View: stateMgr.View()}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	interval := m.state.RefreshInterval()
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return RefreshMsg(t)
	})
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewChart:
		content = m.chart.View()
	case ViewAlmanac:
		content = m.renderAlmanac()
	case ViewEvents:
		content = m.renderEvents()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderAlmanac() string {
	if m.view.Snapshot == nil {
		return "  No snapshot yet"
	}
	return RenderMoonPanel(m.view.Snapshot) + "\n\n" + RenderRiseSetPanel(m.view.Snapshot)
}

func (m Model) renderEvents() string {
	if m.view.Snapshot == nil {
		return "  No snapshot yet"
	}
	return RenderEventsPanel(m.view.Snapshot, m.view.Changes)
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		` ███╗   ██╗██╗ ██████╗ ██╗  ██╗████████╗    ███████╗██╗  ██╗██╗   ██╗`,
		` ████╗  ██║██║██╔════╝ ██║  ██║╚══██╔══╝    ██╔════╝██║ ██╔╝╚██╗ ██╔╝`,
		` ██╔██╗ ██║██║██║  ███╗███████║   ██║       ███████╗█████╔╝  ╚████╔╝ `,
		` ██║╚██╗██║██║██║   ██║██╔══██║   ██║       ╚════██║██╔═██╗   ╚██╔╝  `,
		` ██║ ╚████║██║╚██████╔╝██║  ██║   ██║       ███████║██║  ██╗   ██║   `,
		` ╚═╝  ╚═══╝╚═╝ ╚═════╝ ╚═╝  ╚═╝   ╚═╝       ╚══════╝╚═╝  ╚═╝   ╚═╝   `,
	}

	var b strings.Builder
	b.WriteString("\n")
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	tagline := fmt.Sprintf("  What's overhead right now | v%s", version.Version)
	b.WriteString(muted.Render(tagline))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient:
// dusk blue through indigo to violet, fading toward the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	if xRatio < 0.5 {
		// Dusk blue (#38BDF8) to indigo (#6366F1)
		t := xRatio / 0.5
		r = 56 + t*(99-56)
		g = 189 + t*(102-189)
		b = 248 + t*(241-248)
	} else {
		// Indigo to violet (#A855F7)
		t := (xRatio - 0.5) / 0.5
		r = 99 + t*(168-99)
		g = 102 + t*(85-102)
		b = 241 + t*(247-241)
	}

	fade := 1.0 - yRatio*0.45
	ri := clampByte(r * fade)
	gi := clampByte(g * fade)
	bi := clampByte(b * fade)

	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clampByte(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Sky", "[2] Almanac", "[3] Events"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case strings.HasPrefix(m.statusMsg, "ERROR"):
		status = errorStyle.Render(m.statusMsg)
	case m.view.Snapshot != nil:
		next := m.view.LastCompute.Add(m.state.RefreshInterval())
		countdown := time.Until(next).Round(time.Second)
		if countdown < 0 {
			countdown = 0
		}
		status = accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(" refresh in %ds", int(countdown.Seconds())))
		if m.view.ComputeDuration > 0 {
			status += dimStyle.Render(" (" + m.view.ComputeDuration.Round(time.Millisecond).String() + ")")
		}
	default:
		status = accentStyle.Render(spinner) + dimStyle.Render(" Computing first snapshot...")
	}

	var help string
	switch m.viewMode {
	case ViewChart:
		help = dimStyle.Render("j/k: focus | l: labels | r: refresh | tab: switch view")
	default:
		help = dimStyle.Render("r: refresh | tab: switch view | q: quit")
	}

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help
	if m.statusMsg != "" && !strings.HasPrefix(m.statusMsg, "ERROR") {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}
