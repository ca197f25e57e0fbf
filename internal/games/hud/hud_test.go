package hud

import (
	"testing"

	"github.com/vovakirdan/math-champions/internal/core"
)

func TestStars(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{-1, "☆☆☆"},
		{0, "☆☆☆"},
		{2, "★★☆"},
		{3, "★★★"},
		{7, "★★★"},
	}

	for _, tt := range tests {
		if got := Stars(tt.n); got != tt.expected {
			t.Errorf("Stars(%d) = %q, expected %q", tt.n, got, tt.expected)
		}
	}
}

func TestMeter(t *testing.T) {
	tests := []struct {
		value, limit, width int
		expected            string
	}{
		{5, 10, 4, "██░░"},
		{0, 10, 3, "░░░"},
		{20, 10, 3, "███"},
		{1, 0, 3, ""},
	}

	for _, tt := range tests {
		if got := Meter(tt.value, tt.limit, tt.width); got != tt.expected {
			t.Errorf("Meter(%d, %d, %d) = %q, expected %q", tt.value, tt.limit, tt.width, got, tt.expected)
		}
	}
}

func TestHeaderAndBanner(t *testing.T) {
	s := core.NewScreen(50, 20)
	Header(s, "MATH", "XP 40")
	Banner(s, "LEVEL 2", "Ready?")

	if !s.Contains("MATH") || !s.Contains("XP 40") {
		t.Error("Header should draw title and status")
	}
	if !s.Contains("LEVEL 2") || !s.Contains("Ready?") {
		t.Error("Banner should draw every line")
	}
}

func TestTooSmall(t *testing.T) {
	if !TooSmall(30, 30) || !TooSmall(80, 10) || TooSmall(80, 24) {
		t.Error("TooSmall() returned the wrong answer")
	}
}
