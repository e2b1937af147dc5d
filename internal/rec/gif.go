// Package rec records generation snapshots into an animated GIF with a
// fixed two-entry palette: index 0 is the dead color, index 1 the live
// color.
package rec

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/pkg/errors"
)

// Palette colors match the on-screen ones: dark blue for dead cells,
// white for live ones.
var (
	DeadColor  = color.RGBA{R: 0x00, G: 0x11, B: 0x22, A: 0xff}
	AliveColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// GIF accumulates palette-indexed frames and encodes them as an
// infinitely looping animation when closed. Frames are appended strictly
// in generation order.
type GIF struct {
	f       *os.File
	anim    *gif.GIF
	w, h    int
	delay   int // per-frame delay in 1/100ths of a second
	palette color.Palette
	closed  bool
}

// NewGIF creates the output file up front so a run that cannot persist
// its animation fails before the first generation is computed. The
// per-frame delay is derived from fps as 100/fps centiseconds.
func NewGIF(path string, w, h, fps int) (*GIF, error) {
	if fps <= 0 {
		fps = 1
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create animation output")
	}
	return &GIF{
		f:       f,
		anim:    &gif.GIF{LoopCount: 0}, // 0 loops forever
		w:       w,
		h:       h,
		delay:   100 / fps,
		palette: color.Palette{DeadColor, AliveColor},
	}, nil
}

// Append adds one frame from a row-major index snapshot (0 dead, 1
// alive). The snapshot is copied, so callers may reuse the slice.
func (g *GIF) Append(indices []uint8) error {
	if g.closed {
		return errors.New("append to closed recorder")
	}
	if len(indices) != g.w*g.h {
		return errors.Errorf("frame has %d indices, want %d", len(indices), g.w*g.h)
	}
	frame := image.NewPaletted(image.Rect(0, 0, g.w, g.h), g.palette)
	copy(frame.Pix, indices)
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

// Frames returns the number of frames appended so far.
func (g *GIF) Frames() int { return len(g.anim.Image) }

// Close encodes the accumulated frames and finalizes the file. It must be
// called even after an early exit so the animation recorded so far is
// still playable.
func (g *GIF) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if err := gif.EncodeAll(g.f, g.anim); err != nil {
		g.f.Close()
		return errors.Wrap(err, "encode animation")
	}
	return errors.Wrap(g.f.Close(), "close animation output")
}
