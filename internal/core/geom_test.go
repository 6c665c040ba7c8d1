package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 10, 10), true},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching bottom edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"apart vertically", NewBox(0, 0, 10, 10), NewBox(0, 25, 10, 10), false},
		{"thin zone inside", NewBox(0, 0, 50, 600), NewBox(20, -10, 10, 700), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxFromCenter(t *testing.T) {
	b := BoxFromCenter(160, 220, 50, 36)
	if b.X != 135 || b.Y != 202 {
		t.Errorf("BoxFromCenter origin = (%v, %v), expected (135, 202)", b.X, b.Y)
	}
	cx, cy := b.Center()
	if cx != 160 || cy != 220 {
		t.Errorf("Center() = (%v, %v), expected (160, 220)", cx, cy)
	}
}

func TestBoxPenetration(t *testing.T) {
	dx, dy := NewBox(0, 0, 10, 10).Penetration(NewBox(8, 6, 10, 10))
	if dx != 2 || dy != 4 {
		t.Errorf("Penetration() = (%v, %v), expected (2, 4)", dx, dy)
	}

	dx, dy = NewBox(0, 0, 10, 10).Penetration(NewBox(20, 20, 1, 1))
	if dx != 0 || dy != 0 {
		t.Errorf("Penetration() of disjoint boxes = (%v, %v), expected zero", dx, dy)
	}
}

func TestBoxScale(t *testing.T) {
	// 800x600 world onto an 80x24 screen
	r := NewBox(100, 300, 64, 50).Scale(0.1, 0.04)
	expected := NewRect(10, 12, 7, 2)
	if r != expected {
		t.Errorf("Scale() = %+v, expected %+v", r, expected)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{-40, -25, 50, -25},
		{12.5, -25, 50, 12.5},
		{75, -25, 50, 50},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
