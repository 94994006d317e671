package ephem

import (
	"errors"
	"testing"
	"time"
)

func TestBuiltinSource(t *testing.T) {
	src := NewBuiltinSource()
	at := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)

	for _, body := range Bodies {
		if !src.Available(body) {
			t.Errorf("Available(%q) = false", body)
		}
		eq, err := src.Position(body, at)
		if err != nil {
			t.Errorf("Position(%q) error = %v", body, err)
			continue
		}
		if eq.RADeg < 0 || eq.RADeg >= 360 {
			t.Errorf("Position(%q) RA = %.4f out of range", body, eq.RADeg)
		}
		if eq.DecDeg < -90 || eq.DecDeg > 90 {
			t.Errorf("Position(%q) Dec = %.4f out of range", body, eq.DecDeg)
		}
	}

	if src.Available("pluto") {
		t.Error("Available(pluto) = true")
	}
	if _, err := src.Position("pluto", at); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("Position(pluto) error = %v, want ErrUnknownBody", err)
	}
}

func TestParseEphemMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"builtin", ModeBuiltin},
		{"high-accuracy", ModeHighAccuracy},
		{"high_accuracy", ModeHighAccuracy},
		{"", ModeBuiltin},
		{"bogus", ModeBuiltin},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
