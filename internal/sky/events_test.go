package sky

import (
	"testing"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

func TestDetectEvents_Conjunction(t *testing.T) {
	bodies := []bodyCoord{
		{name: "venus", eq: astro.Equatorial{RADeg: 120, DecDeg: 10}},
		{name: "jupiter", eq: astro.Equatorial{RADeg: 120, DecDeg: 10}},
		{name: "mars", eq: astro.Equatorial{RADeg: 210, DecDeg: 10}},
	}

	events := detectEvents(bodies, 5, 8)

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %+v", len(events), events)
	}
	ev := events[0]
	if ev.Kind != EventConjunction {
		t.Errorf("kind = %q", ev.Kind)
	}
	if ev.BodyA != "venus" || ev.BodyB != "jupiter" {
		t.Errorf("pair = %q/%q, want venus/jupiter", ev.BodyA, ev.BodyB)
	}
	if ev.SeparationDeg > 1e-9 {
		t.Errorf("separation = %.6f, want ~0", ev.SeparationDeg)
	}
}

func TestDetectEvents_NoneAt90Degrees(t *testing.T) {
	bodies := []bodyCoord{
		{name: "a", eq: astro.Equatorial{RADeg: 0, DecDeg: 0}},
		{name: "b", eq: astro.Equatorial{RADeg: 90, DecDeg: 0}},
	}
	if events := detectEvents(bodies, 5, 8); len(events) != 0 {
		t.Errorf("got %d events, want none: %+v", len(events), events)
	}
}

func TestDetectEvents_EclipseWindows(t *testing.T) {
	tests := []struct {
		name     string
		moon     astro.Equatorial
		wantKind string
	}{
		{"solar window", astro.Equatorial{RADeg: 3, DecDeg: 1}, EclipseSolar},
		{"lunar window", astro.Equatorial{RADeg: 183, DecDeg: 1}, EclipseLunar},
	}

	sun := astro.Equatorial{RADeg: 0, DecDeg: 0}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := detectEvents([]bodyCoord{
				{name: "sun", eq: sun},
				{name: "moon", eq: tt.moon},
			}, 5, 8)

			var found bool
			for _, ev := range events {
				if ev.Kind == EventEclipseWindow && ev.EclipseKind == tt.wantKind {
					found = true
				}
			}
			if !found {
				t.Errorf("no %s eclipse window in %+v", tt.wantKind, events)
			}
		})
	}
}

func TestDetectEvents_ThresholdsInjectable(t *testing.T) {
	bodies := []bodyCoord{
		{name: "a", eq: astro.Equatorial{RADeg: 0, DecDeg: 0}},
		{name: "b", eq: astro.Equatorial{RADeg: 6, DecDeg: 0}},
	}

	if events := detectEvents(bodies, 5, 8); len(events) != 0 {
		t.Errorf("default threshold flagged a 6 degree pair: %+v", events)
	}
	if events := detectEvents(bodies, 7, 8); len(events) != 1 {
		t.Errorf("widened threshold got %d events, want 1", len(events))
	}
}
