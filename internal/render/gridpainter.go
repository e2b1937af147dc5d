//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data, with
// each cell magnified to a scale x scale block.
type GridPainter struct {
	w, h  int
	scale int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a grid of size w*h shown at the
// given magnification.
func NewGridPainter(w, h, scale int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	gp := &GridPainter{w: w, h: h, scale: scale, buf: make([]byte, 4*w*scale*h*scale)}
	gp.img = ebiten.NewImage(w*scale, h*scale)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color) {
	if len(cells) != gp.w*gp.h {
		return
	}
	ScaledBinaryRGBA(gp.buf, cells, gp.w, gp.h, gp.scale, on, off)
	gp.img.ReplacePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.scale, gp.h * gp.scale }
