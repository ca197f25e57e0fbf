package core

import "testing"

func TestSpanOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"identical", Span{X: 5, W: 10}, Span{X: 5, W: 10}, Span{X: 5, W: 10}},
		{"shifted right", Span{X: 5, W: 10}, Span{X: 8, W: 10}, Span{X: 8, W: 7}},
		{"shifted left", Span{X: 5, W: 10}, Span{X: 2, W: 10}, Span{X: 5, W: 7}},
		{"inside", Span{X: 0, W: 20}, Span{X: 4, W: 3}, Span{X: 4, W: 3}},
		{"touching", Span{X: 0, W: 5}, Span{X: 5, W: 5}, Span{X: 5, W: 0}},
		{"apart", Span{X: 0, W: 5}, Span{X: 9, W: 5}, Span{X: 9, W: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Overlap(tt.b)
			if got != tt.expected {
				t.Errorf("Overlap() = %+v, expected %+v", got, tt.expected)
			}
			if rev := tt.b.Overlap(tt.a); rev.W != got.W {
				t.Errorf("Overlap should be symmetric in width: %d vs %d", rev.W, got.W)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 3, 3)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 2, true},
		{4, 4, true},
		{5, 4, false},
		{1, 3, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectCentered(t *testing.T) {
	got := NewRect(0, 0, 80, 24).Centered(20, 4)
	expected := Rect{X: 30, Y: 10, W: 20, H: 4}
	if got != expected {
		t.Errorf("Centered() = %+v, expected %+v", got, expected)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}

func TestRuntimeConfigTicks(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 30}

	tests := []struct {
		ms, expected int
	}{
		{1000, 30},
		{800, 24},
		{10, 1},
		{0, 1},
	}

	for _, tt := range tests {
		if got := cfg.Ticks(tt.ms); got != tt.expected {
			t.Errorf("Ticks(%d) = %d, expected %d", tt.ms, got, tt.expected)
		}
	}
}
