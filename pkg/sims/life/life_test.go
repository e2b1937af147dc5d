package life

import (
	"bytes"
	"testing"

	"gol-gif/pkg/core"
)

func cellSet(l *Life) map[[2]int]bool {
	size := l.Size()
	set := map[[2]int]bool{}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if l.Alive(x, y) {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func expectCells(t *testing.T, l *Life, expects map[[2]int]bool) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := l.Alive(x, y)
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, !alive)
			}
		}
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	l := New(8, 8, 0, nil)
	for i := 0; i < 5; i++ {
		l.Step()
	}
	expectCells(t, l, nil)
}

func TestBlockIsStill(t *testing.T) {
	l := New(8, 8, 0, nil)
	l.Stamp(Block, 3, 3)
	want := cellSet(l)
	for i := 0; i < 4; i++ {
		l.Step()
		expectCells(t, l, want)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := New(5, 5, 0, nil)
	l.Stamp(Blinker, 1, 2)

	l.Step()
	expectCells(t, l, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})

	l.Step()
	expectCells(t, l, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	l := New(12, 12, 0, nil)
	l.Stamp(Glider, 2, 2)

	want := map[[2]int]bool{}
	for _, o := range Glider.Cells {
		want[[2]int{2 + o.DX + 1, 2 + o.DY + 1}] = true
	}

	for i := 0; i < 4; i++ {
		l.Step()
	}
	expectCells(t, l, want)
}

func TestSpaceshipTranslatesHorizontally(t *testing.T) {
	l := New(20, 10, 0, nil)
	l.Stamp(LightweightSpaceship, 4, 3)
	before := normalize(cellSet(l))

	for i := 0; i < 4; i++ {
		l.Step()
	}

	after := cellSet(l)
	if len(after) != len(LightweightSpaceship.Cells) {
		t.Fatalf("population %d after one period, want %d", len(after), len(LightweightSpaceship.Cells))
	}
	minX, minY := bounds(after)
	_, beforeY := bounds(cellsAt(LightweightSpaceship, 4, 3))
	if minY != beforeY {
		t.Fatalf("spaceship drifted vertically: minY %d, want %d", minY, beforeY)
	}
	if dx := minX - 4; dx != 2 && dx != -2 {
		t.Fatalf("spaceship moved %d cells horizontally, want 2", dx)
	}
	if shape := normalize(after); !sameSet(shape, before) {
		t.Fatalf("spaceship shape changed after one period")
	}
}

func TestOscillatorPeriods(t *testing.T) {
	cases := []struct {
		pattern Pattern
		period  int
	}{
		{Toad, 2},
		{Beacon, 2},
		{Pulsar, 3},
	}
	for _, tc := range cases {
		l := New(20, 20, 0, nil)
		l.Stamp(tc.pattern, 3, 3)
		want := l.ExportIndices()

		for i := 1; i < tc.period; i++ {
			l.Step()
			if bytes.Equal(l.ExportIndices(), want) {
				t.Fatalf("%s repeated after %d steps, period should be %d", tc.pattern.Name, i, tc.period)
			}
		}
		l.Step()
		if !bytes.Equal(l.ExportIndices(), want) {
			t.Fatalf("%s did not return to its initial cells after %d steps", tc.pattern.Name, tc.period)
		}
	}
}

func TestNeighborCountHasHardEdges(t *testing.T) {
	l := New(4, 4, 0, nil)
	cells := l.Cells()
	for i := range cells {
		cells[i] = 1
	}

	if got := l.NeighborCount(0, 0); got != 3 {
		t.Fatalf("corner neighbor count %d, want 3", got)
	}
	if got := l.NeighborCount(0, 2); got != 5 {
		t.Fatalf("edge neighbor count %d, want 5", got)
	}
	if got := l.NeighborCount(1, 1); got != 8 {
		t.Fatalf("interior neighbor count %d, want 8", got)
	}
}

func TestNeighborCountDoesNotWrap(t *testing.T) {
	l := New(6, 6, 0, nil)
	l.Stamp(Blinker, 3, 0) // fills (3,0)..(5,0) on the top edge

	if got := l.NeighborCount(0, 0); got != 0 {
		t.Fatalf("count at opposite edge = %d, want 0", got)
	}
	if got := l.NeighborCount(3, 5); got != 0 {
		t.Fatalf("count across bottom edge = %d, want 0", got)
	}
}

func TestSeedDensityExtremes(t *testing.T) {
	l := New(10, 10, 0, nil)
	rng := core.NewRNG(7).Source()

	l.Seed(rng, 0, nil)
	for i, c := range l.Cells() {
		if c != 0 {
			t.Fatalf("cell %d alive after seeding with density 0", i)
		}
	}

	l.Seed(rng, 1, nil)
	for i, c := range l.Cells() {
		if c != 1 {
			t.Fatalf("cell %d dead after seeding with density 1", i)
		}
	}
}

func TestSeedStampsPlacementsOverNoise(t *testing.T) {
	l := New(10, 10, 0, nil)
	rng := core.NewRNG(7).Source()

	l.Seed(rng, 0, []Placement{{Block, 4, 4}})
	expectCells(t, l, map[[2]int]bool{
		{4, 4}: true, {5, 4}: true,
		{4, 5}: true, {5, 5}: true,
	})
}

func TestResetIsDeterministic(t *testing.T) {
	a := New(30, 30, 0.15, DefaultPlacements())
	b := New(30, 30, 0.15, DefaultPlacements())
	a.Reset(42)
	b.Reset(42)
	if !bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	l := New(6, 6, 0, nil)
	l.Stamp(Block, 5, 5)
	expectCells(t, l, map[[2]int]bool{{5, 5}: true})

	l = New(6, 6, 0, nil)
	l.Stamp(Glider, -2, -2)
	expectCells(t, l, map[[2]int]bool{{0, 0}: true})
}

func TestExportIndices(t *testing.T) {
	l := New(7, 5, 0, nil)
	l.Stamp(Blinker, 2, 2)

	idx := l.ExportIndices()
	if len(idx) != 7*5 {
		t.Fatalf("export length %d, want %d", len(idx), 7*5)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			v := idx[y*7+x]
			if v != 0 && v != 1 {
				t.Fatalf("index (%d,%d) = %d, want 0 or 1", x, y, v)
			}
			if (v == 1) != l.Alive(x, y) {
				t.Fatalf("index (%d,%d) = %d disagrees with Alive", x, y, v)
			}
		}
	}

	// The snapshot must not alias the live grid: (2,2) dies when the
	// blinker flips vertical, but the export keeps it.
	l.Step()
	if idx[2*7+2] != 1 {
		t.Fatal("exported snapshot changed after Step")
	}
}

func TestAliveFailsFastOutOfRange(t *testing.T) {
	l := New(4, 4, 0, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range query")
		}
	}()
	l.Alive(-1, 2)
}

func cellsAt(p Pattern, x, y int) map[[2]int]bool {
	set := map[[2]int]bool{}
	for _, o := range p.Cells {
		set[[2]int{x + o.DX, y + o.DY}] = true
	}
	return set
}

func bounds(set map[[2]int]bool) (minX, minY int) {
	first := true
	for c := range set {
		if first || c[0] < minX {
			minX = c[0]
		}
		if first || c[1] < minY {
			minY = c[1]
		}
		first = false
	}
	return
}

func normalize(set map[[2]int]bool) map[[2]int]bool {
	minX, minY := bounds(set)
	out := map[[2]int]bool{}
	for c := range set {
		out[[2]int{c[0] - minX, c[1] - minY}] = true
	}
	return out
}

func sameSet(a, b map[[2]int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if !b[c] {
			return false
		}
	}
	return true
}
