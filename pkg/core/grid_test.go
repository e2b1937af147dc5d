package core

import "testing"

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{3, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 3, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.x, tc.y); got != tc.in {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.in)
		}
	}
}

func TestByteGridIndexAndClear(t *testing.T) {
	g := NewByteGrid(5, 4)
	if got := g.Index(3, 2); got != 13 {
		t.Fatalf("Index(3,2) = %d, want 13", got)
	}
	cells := g.Cells()
	if len(cells) != 20 {
		t.Fatalf("len(Cells()) = %d, want 20", len(cells))
	}
	for i := range cells {
		cells[i] = 1
	}
	g.Clear()
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d = %d after Clear", i, c)
		}
	}
}
