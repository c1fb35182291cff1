package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 6, 3)

	if r.Right() != 7 || r.Bottom() != 5 {
		t.Errorf("edges = (%d, %d), expected (7, 5)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{3, 8, 3},
		{8, 8, 0},
		{-1, 8, 7},
		{-9, 8, 7},
		{5, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestSuitColor(t *testing.T) {
	if SuitColor(0) == SuitColor(1) {
		t.Error("adjacent suits should differ in color")
	}
	if SuitColor(0) != SuitColor(8) {
		t.Error("palette should cycle after eight suits")
	}
	if SuitColor(-1) != ColorDefault {
		t.Error("negative index should use the default color")
	}
	if !(AttrBold | AttrReverse).Has(AttrReverse) || AttrBold.Has(AttrFaint) {
		t.Error("unexpected Attr.Has result")
	}
}
