package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chandrasekarnarayana/night-sky/internal/sky"
	"github.com/chandrasekarnarayana/night-sky/internal/state"
)

const (
	// Field of view in degrees
	fovAz  = 120.0 // horizontal FOV
	fovAlt = 60.0  // vertical FOV

	// Animation
	animDuration = 400 * time.Millisecond

	// Body glyphs
	glyphBody        = '✦'
	glyphBodyFocused = '◆'
	glyphMoon        = '●'
	glyphDeepSky     = '○'

	// Body colors
	colorBody        = "#d0c8ff"
	colorBodyFocused = "229" // bright gold
	colorMoon        = "252"
	colorDeepSky     = "66" // desaturated teal

	// Star glyphs by magnitude
	glyphStarBright = '✶' // mag < 1.5
	glyphStarMedium = '✸' // mag 1.5-3.0
	glyphStarDim    = '·' // mag > 3.0

	// Star colors (grayscale to not compete with planets)
	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
)

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only focused body
	LabelAll                      // All bodies
)

// ChartModel renders the sky dome with the visible bodies and stars.
type ChartModel struct {
	width  int
	height int

	// Camera position (center of view)
	camAz  float64
	camAlt float64

	// Animation state
	animating    bool
	animStartAz  float64
	animStartAlt float64
	animTargAz   float64
	animTargAlt  float64
	animStart    time.Time

	// Focus cycles through the visible bodies
	focusIdx int

	// Label display mode
	labelMode LabelMode

	snapshot *sky.Snapshot
}

// NewChartModel creates a new chart model.
func NewChartModel() ChartModel {
	return ChartModel{
		camAz:     180,
		camAlt:    45,
		labelMode: LabelFocused,
	}
}

// SetSize updates the viewport size.
func (m ChartModel) SetSize(width, height int) ChartModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new snapshot.
func (m ChartModel) UpdateData(view state.View) ChartModel {
	m.snapshot = view.Snapshot
	if m.snapshot == nil {
		return m
	}

	if m.focusIdx >= len(m.snapshot.VisiblePlanets) {
		m.focusIdx = 0
	}

	// If not animating, snap camera to the focused body
	if !m.animating && len(m.snapshot.VisiblePlanets) > 0 {
		b := m.snapshot.VisiblePlanets[m.focusIdx]
		m.camAz = b.AzDeg
		m.camAlt = b.AltDeg
	}

	return m
}

// Update handles messages.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			return m.focusPrev(), nil
		case "down", "j":
			return m.focusNext(), nil
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}

	case TickMsg:
		if m.animating {
			m = m.updateAnimation()
		}
	}

	return m, nil
}

func (m ChartModel) focusNext() ChartModel {
	if m.snapshot == nil || len(m.snapshot.VisiblePlanets) == 0 {
		return m
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.snapshot.VisiblePlanets)
	return m.startAnimation()
}

func (m ChartModel) focusPrev() ChartModel {
	if m.snapshot == nil || len(m.snapshot.VisiblePlanets) == 0 {
		return m
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.snapshot.VisiblePlanets) - 1
	}
	return m.startAnimation()
}

func (m ChartModel) startAnimation() ChartModel {
	b := m.snapshot.VisiblePlanets[m.focusIdx]
	m.animating = true
	m.animStartAz = m.camAz
	m.animStartAlt = m.camAlt
	m.animTargAz = b.AzDeg
	m.animTargAlt = b.AltDeg
	m.animStart = time.Now()
	return m
}

func (m ChartModel) updateAnimation() ChartModel {
	t := float64(time.Since(m.animStart)) / float64(animDuration)
	if t >= 1.0 {
		m.animating = false
		m.camAz = m.animTargAz
		m.camAlt = m.animTargAlt
		return m
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)
	m.camAz = lerpAngle(m.animStartAz, m.animTargAz, t)
	m.camAlt = lerp(m.animStartAlt, m.animTargAlt, t)
	return m
}

// View renders the chart.
func (m ChartModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky chart requires larger terminal"
	}
	if m.snapshot == nil {
		return "  No snapshot yet"
	}

	viewHeight := m.height - 3
	canvas := m.renderCanvas(m.width, viewHeight)

	var b strings.Builder
	b.WriteString(m.renderChartHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderChartStatus())
	return b.String()
}

func (m ChartModel) renderChartHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("179"))

	title := titleStyle.Render("Sky Chart")

	count := dimStyle.Render(fmt.Sprintf("%d stars, %d bodies",
		len(m.snapshot.VisibleStars), len(m.snapshot.VisiblePlanets)))
	if m.snapshot.TwilightSuppressed {
		count = warnStyle.Render("daylight: sky suppressed")
	}

	var labelStr string
	switch m.labelMode {
	case LabelNone:
		labelStr = dimStyle.Render("Labels: off")
	case LabelFocused:
		labelStr = dimStyle.Render("Labels: focus")
	case LabelAll:
		labelStr = dimStyle.Render("Labels: all")
	}

	compass := dimStyle.Render(fmt.Sprintf("Az:%.0f° Alt:%.0f°", m.camAz, m.camAlt))

	return fmt.Sprintf("%s | %s | %s | %s", title, count, labelStr, compass)
}

func (m ChartModel) renderChartStatus() string {
	if len(m.snapshot.VisiblePlanets) == 0 {
		return "No solar-system bodies above the horizon"
	}
	if m.focusIdx >= len(m.snapshot.VisiblePlanets) {
		return ""
	}

	b := m.snapshot.VisiblePlanets[m.focusIdx]
	line := fmt.Sprintf(">>> %s | Az:%.0f° Alt:%.0f°", b.Name, b.AzDeg, b.AltDeg)
	if b.PhaseFraction != nil {
		line += fmt.Sprintf(" | %s (%.0f%% lit)", b.PhaseName, *b.PhaseFraction*100)
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	return accentStyle.Render(line)
}

// bodyPos tracks a body position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

func (m ChartModel) renderCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
		}
	}

	horizonY := height - 2

	// Stars first so bodies draw over them
	for _, star := range m.snapshot.VisibleStars {
		x, y, visible := m.projectToScreen(star.AzDeg, star.AltDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		glyph, color := starGlyph(star.Magnitude)
		canvas[y][x] = glyph
		colors[y][x] = color
	}

	for _, obj := range m.snapshot.DeepSky {
		x, y, visible := m.projectToScreen(obj.AzDeg, obj.AltDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		canvas[y][x] = glyphDeepSky
		colors[y][x] = colorDeepSky
	}

	// Horizon line
	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60"
	}
	m.drawCardinal(canvas, colors, width, height, 'N', 0)
	m.drawCardinal(canvas, colors, width, height, 'E', 90)
	m.drawCardinal(canvas, colors, width, height, 'S', 180)
	m.drawCardinal(canvas, colors, width, height, 'W', 270)

	var positions []bodyPos
	for i, body := range m.snapshot.VisiblePlanets {
		x, y, visible := m.projectToScreen(body.AzDeg, body.AltDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		isFocused := i == m.focusIdx
		sym := glyphBody
		color := lipgloss.Color(colorBody)
		if body.Name == "moon" {
			sym = glyphMoon
			color = colorMoon
		}
		if isFocused {
			sym = glyphBodyFocused
			color = colorBodyFocused
		}

		canvas[y][x] = sym
		colors[y][x] = color
		positions = append(positions, bodyPos{x: x, y: y, name: body.Name, isFocused: isFocused})
	}

	m.renderLabels(canvas, colors, width, horizonY, positions)

	// Observer marker at bottom center
	if width > 0 {
		canvas[height-1][width/2] = '▲'
		colors[height-1][width/2] = "46"
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLabels draws body labels next to their glyphs. Focused labels win
// over non-focused ones in overlapping regions.
func (m ChartModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, positions []bodyPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	claimed := make(map[[2]int]bool)
	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		for i := 0; i < len(pos.name)+4; i++ {
			claimed[[2]int{pos.y, pos.x + 2 + i}] = true
		}
	}

	for _, pos := range positions {
		if m.labelMode == LabelFocused && !pos.isFocused {
			continue
		}

		labelText := pos.name
		color := lipgloss.Color(colorBody)
		if pos.isFocused {
			labelText = "◄ " + pos.name
			color = colorBodyFocused
		}

		for i, r := range []rune(labelText) {
			x := pos.x + 2 + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= horizonY {
				continue
			}
			if !pos.isFocused && claimed[[2]int{pos.y, x}] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = color
		}
	}
}

// starGlyph returns the glyph and color for a star based on its magnitude.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

func (m ChartModel) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label rune, az float64) {
	x, _, visible := m.projectToScreen(az, 0, width, height)
	if !visible {
		return
	}
	y := height - 2
	if x >= 0 && x < width {
		canvas[y][x] = label
		colors[y][x] = "252"
	}
}

// projectToScreen converts az/alt to screen coordinates relative to the
// camera.
func (m ChartModel) projectToScreen(az, alt float64, width, height int) (int, int, bool) {
	dAz := normalizeAngle(az - m.camAz)
	dAlt := alt - m.camAlt

	if dAz < -fovAz/2 || dAz > fovAz/2 {
		return 0, 0, false
	}
	if dAlt < -fovAlt/2 || dAlt > fovAlt/2 {
		return 0, 0, false
	}

	horizonY := height - 2
	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovAlt/2 - dAlt) / fovAlt * float64(horizonY))
	return x, y, true
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking the shortest path
func lerpAngle(a, b, t float64) float64 {
	return a + normalizeAngle(b-a)*t
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
