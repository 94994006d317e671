package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chandrasekarnarayana/night-sky/internal/sky"
	"github.com/chandrasekarnarayana/night-sky/internal/state"
)

// Panel colors
const (
	colorAltHigh   = "#7CFC00" // lawn green - high altitude
	colorAltMedium = "#FFD700" // gold - medium altitude
	colorAltLow    = "#FF6347" // tomato - near the horizon
)

// RenderMoonPanel renders the Moon phase block.
// Format:
//
//	Moon   Waxing gibbous   ███████░░░ 72% lit   Alt 34° Az 121°
func RenderMoonPanel(snap *sky.Snapshot) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	line := labelStyle.Render("  Moon   ")
	if snap.Moon == nil {
		return line + dimStyle.Render("No data")
	}

	moon := snap.Moon
	line += fmt.Sprintf("%-16s", moon.PhaseName)

	if moon.PhaseFraction != nil {
		line += " " + phaseBar(*moon.PhaseFraction) + fmt.Sprintf(" %3.0f%% lit", *moon.PhaseFraction*100)
	}
	if moon.Waxing != nil {
		if *moon.Waxing {
			line += dimStyle.Render("  (waxing)")
		} else {
			line += dimStyle.Render("  (waning)")
		}
	}

	if moon.AltDeg > 0 {
		line += colorByAltitude(moon.AltDeg, fmt.Sprintf("   Alt %.0f° Az %.0f°", moon.AltDeg, moon.AzDeg))
	} else {
		line += dimStyle.Render("   Below horizon")
	}

	return line
}

// phaseBar renders a 10-cell illumination bar.
func phaseBar(fraction float64) string {
	lit := int(fraction*10 + 0.5)
	if lit > 10 {
		lit = 10
	}
	return strings.Repeat("█", lit) + strings.Repeat("░", 10-lit)
}

// RenderRiseSetPanel renders rise/set/culmination lines for every tracked
// body.
// Format:
//
//	sun     Rise 06:14   Peak 58°   Set 18:49
//	moon    Below horizon all window
func RenderRiseSetPanel(snap *sky.Snapshot) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)

	var lines []string
	for _, rec := range snap.RiseSet {
		line := "  " + labelStyle.Render(fmt.Sprintf("%-9s", rec.BodyName))

		if rec.Rise == nil && rec.Set == nil {
			if rec.CulminationAltDeg > 0 {
				line += colorByAltitude(rec.CulminationAltDeg,
					fmt.Sprintf("Always up @ %.0f°", rec.CulminationAltDeg))
			} else {
				line += dimStyle.Render("Below horizon all window")
			}
			lines = append(lines, line)
			continue
		}

		var parts []string
		if rec.Rise != nil {
			parts = append(parts, "Rise "+rec.Rise.Format("15:04"))
		}
		parts = append(parts, fmt.Sprintf("Peak %.0f°", rec.CulminationAltDeg))
		if rec.Set != nil {
			parts = append(parts, "Set "+rec.Set.Format("15:04"))
		}

		line += colorByAltitude(rec.CulminationAltDeg, strings.Join(parts, "   "))
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return dimStyle.Render("  No rise/set data")
	}
	return strings.Join(lines, "\n")
}

// RenderEventsPanel renders detected sky events and the recent change log.
func RenderEventsPanel(snap *sky.Snapshot, changes []state.Change) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	eventStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6347"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("  Sky events"))
	b.WriteString("\n")

	if len(snap.Events) == 0 {
		b.WriteString(dimStyle.Render("  None detected"))
		b.WriteString("\n")
	}
	for _, ev := range snap.Events {
		switch ev.Kind {
		case sky.EventConjunction:
			b.WriteString(eventStyle.Render(fmt.Sprintf("  %s ↔ %s   %.1f° apart",
				ev.BodyA, ev.BodyB, ev.SeparationDeg)))
		case sky.EventEclipseWindow:
			b.WriteString(warnStyle.Render(fmt.Sprintf("  Possible %s eclipse window (sep %.1f°)",
				ev.EclipseKind, ev.SeparationDeg)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Recent changes"))
	b.WriteString("\n")
	if len(changes) == 0 {
		b.WriteString(dimStyle.Render("  None yet"))
		return b.String()
	}

	// Newest last, like a log
	for _, c := range changes {
		stamp := dimStyle.Render(c.Timestamp.Format("15:04:05") + "  ")
		switch c.Type {
		case state.ChangeBodyRisen:
			b.WriteString("  " + stamp + c.Body + " rose")
		case state.ChangeBodySet:
			b.WriteString("  " + stamp + c.Body + " set")
		case state.ChangeSkyEvent:
			b.WriteString("  " + stamp + "new event: " + c.Detail)
		case state.ChangeMoonPhase:
			b.WriteString("  " + stamp + "moon entered " + c.Detail)
		case state.ChangeTwilight:
			b.WriteString("  " + stamp + "switched to " + c.Detail)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// colorByAltitude styles text by how high the body gets.
func colorByAltitude(altDeg float64, text string) string {
	var color string
	switch {
	case altDeg >= 45:
		color = colorAltHigh
	case altDeg >= 15:
		color = colorAltMedium
	default:
		color = colorAltLow
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
