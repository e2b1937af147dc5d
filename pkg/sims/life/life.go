package life

import (
	"math/rand/v2"

	"gol-gif/pkg/core"
)

// Life implements Conway's Game of Life on a bounded grid. Cells outside
// the grid do not exist: neighbor counting never wraps to the opposite
// edge, so the borders behave as permanently dead territory.
type Life struct {
	cur     *core.ByteGrid
	nxt     *core.ByteGrid
	density float64
	places  []Placement
}

// New returns a Life simulation with the provided dimensions, all cells
// dead. Reset seeds it with random noise at the given density followed by
// the provided pattern placements.
func New(w, h int, density float64, places []Placement) *Life {
	return &Life{
		cur:     core.NewByteGrid(w, h),
		nxt:     core.NewByteGrid(w, h),
		density: density,
		places:  places,
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values (0 dead, 1 alive).
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Reset reseeds the board using the configured density and placements.
func (l *Life) Reset(seed int64) {
	l.Seed(core.NewRNG(seed).Source(), l.density, l.places)
}

// Seed clears the grid, sets every cell alive independently with
// probability density, then stamps the placements on top so the named
// patterns always win over the noise at their footprint.
func (l *Life) Seed(rng *rand.Rand, density float64, places []Placement) {
	core.FillDensity(rng, l.cur.Cells(), density)
	for _, p := range places {
		l.Stamp(p.Pattern, p.X, p.Y)
	}
}

// Stamp sets the pattern's cells alive relative to base (x, y). Offsets
// that land outside the grid are clipped, never wrapped.
func (l *Life) Stamp(pat Pattern, x, y int) {
	cells := l.cur.Cells()
	for _, o := range pat.Cells {
		cx, cy := x+o.DX, y+o.DY
		if l.cur.InBounds(cx, cy) {
			cells[l.cur.Index(cx, cy)] = 1
		}
	}
}

// Step advances the simulation by one generation. The next state is
// computed entirely from the current buffer before the swap, so every
// cell sees a consistent snapshot of the previous generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := l.NeighborCount(x, y)
			idx := y*w + x
			alive := cur[idx] == 1
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// NeighborCount returns the number of live cells in the Moore
// neighborhood of (x, y). Positions outside the grid are skipped, so a
// corner cell has at most 3 counted neighbors.
func (l *Life) NeighborCount(x, y int) int {
	cells := l.cur.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if l.cur.InBounds(nx, ny) {
				count += int(cells[l.cur.Index(nx, ny)])
			}
		}
	}
	return count
}

// Alive reports whether the cell at (x, y) is alive. Coordinates must lie
// within the grid; out-of-range queries are a caller bug and panic.
func (l *Life) Alive(x, y int) bool {
	if !l.cur.InBounds(x, y) {
		panic("life: cell query out of range")
	}
	return l.cur.Cells()[l.cur.Index(x, y)] == 1
}

// ExportIndices returns a fresh row-major snapshot of the grid as palette
// indices (0 dead, 1 alive), suitable for handing to a frame encoder that
// keeps the slice past the next Step.
func (l *Life) ExportIndices() []uint8 {
	out := make([]uint8, len(l.cur.Cells()))
	copy(out, l.cur.Cells())
	return out
}
