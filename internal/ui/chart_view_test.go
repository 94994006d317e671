package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/chandrasekarnarayana/night-sky/internal/sky"
	"github.com/chandrasekarnarayana/night-sky/internal/state"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{360, 0},
		{-360, 0},
		{350, -10},
		{370, 10},
		{-190, 170},
		{540, 180},
	}

	for _, tt := range tests {
		got := normalizeAngle(tt.input)
		if math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLerpAngle_ShortestPath(t *testing.T) {
	tests := []struct {
		from     float64
		to       float64
		t        float64
		expected float64
	}{
		{0, 90, 0.5, 45},
		// Wrap-around: 350 to 10 goes +20, not -340
		{350, 10, 0.5, 0},
		{10, 350, 0.5, 0},
	}

	for _, tt := range tests {
		got := normalizeAngle(lerpAngle(tt.from, tt.to, tt.t))
		if math.Abs(got-normalizeAngle(tt.expected)) > 0.001 {
			t.Errorf("lerpAngle(%v, %v, %v) = %v, want %v", tt.from, tt.to, tt.t, got, tt.expected)
		}
	}
}

func TestProjectToScreen(t *testing.T) {
	m := NewChartModel()
	m.camAz = 180
	m.camAlt = 30

	// Center of view lands in the middle of the canvas.
	x, y, visible := m.projectToScreen(180, 30, 100, 42)
	if !visible {
		t.Fatal("camera center not visible")
	}
	if x != 50 {
		t.Errorf("x = %d, want 50", x)
	}
	if y != 20 {
		t.Errorf("y = %d, want 20", y)
	}

	// Outside the field of view.
	if _, _, visible := m.projectToScreen(0, 30, 100, 42); visible {
		t.Error("opposite azimuth should be outside the FOV")
	}
	if _, _, visible := m.projectToScreen(180, 89, 100, 42); visible {
		t.Error("near-zenith point should be outside the FOV")
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		mag  float64
		want rune
	}{
		{-1.46, glyphStarBright},
		{1.0, glyphStarBright},
		{2.0, glyphStarMedium},
		{4.0, glyphStarDim},
	}
	for _, tt := range tests {
		if got, _ := starGlyph(tt.mag); got != tt.want {
			t.Errorf("starGlyph(%.2f) = %c, want %c", tt.mag, got, tt.want)
		}
	}
}

func testSnapshot() *sky.Snapshot {
	frac := 0.72
	waxing := true
	moon := sky.Body{Name: "moon", AltDeg: 35, AzDeg: 180, PhaseFraction: &frac, PhaseName: "Waxing gibbous", Waxing: &waxing}
	return &sky.Snapshot{
		VisibleStars: []sky.Star{
			{Name: "Sirius", Magnitude: -1.46, AltDeg: 40, AzDeg: 170},
			{Name: "Procyon", Magnitude: 0.38, AltDeg: 50, AzDeg: 190},
		},
		VisiblePlanets: []sky.Body{
			moon,
			{Name: "jupiter", AltDeg: 25, AzDeg: 200},
		},
		Moon: &moon,
	}
}

func TestChartModel_View(t *testing.T) {
	m := NewChartModel().SetSize(100, 30)
	m = m.UpdateData(state.View{Snapshot: testSnapshot()})

	out := m.View()
	if !strings.Contains(out, "Sky Chart") {
		t.Error("missing chart header")
	}
	if !strings.Contains(out, "2 stars, 2 bodies") {
		t.Error("missing object counts")
	}
	// Focused body status line
	if !strings.Contains(out, "moon") {
		t.Error("missing focused body status")
	}
}

func TestChartModel_FocusCycling(t *testing.T) {
	m := NewChartModel().SetSize(100, 30)
	m = m.UpdateData(state.View{Snapshot: testSnapshot()})

	if m.focusIdx != 0 {
		t.Fatalf("initial focus = %d", m.focusIdx)
	}
	m = m.focusNext()
	if m.focusIdx != 1 {
		t.Errorf("focus after next = %d, want 1", m.focusIdx)
	}
	if !m.animating {
		t.Error("focus change did not start the camera animation")
	}
	m = m.focusNext()
	if m.focusIdx != 0 {
		t.Errorf("focus should wrap to 0, got %d", m.focusIdx)
	}

	m = m.focusPrev()
	if m.focusIdx != 1 {
		t.Errorf("focus after prev = %d, want 1", m.focusIdx)
	}
}

func TestChartModel_EmptySnapshot(t *testing.T) {
	m := NewChartModel().SetSize(100, 30)
	m = m.UpdateData(state.View{Snapshot: &sky.Snapshot{TwilightSuppressed: true}})

	out := m.View()
	if !strings.Contains(out, "daylight") {
		t.Error("suppressed snapshot should show the daylight notice")
	}
	if !strings.Contains(out, "No solar-system bodies") {
		t.Error("missing empty-status line")
	}
}
