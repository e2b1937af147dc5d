//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD draws a one-line generation/recording status over the simulation
// view. H toggles it.
type HUD struct {
	out     string
	visible bool
}

// NewHUD constructs a HUD reporting progress toward the named output file.
func NewHUD(out string) *HUD {
	return &HUD{out: out, visible: true}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the status line.
func (h *HUD) Draw(screen *ebiten.Image, gen, maxGen int) {
	if !h.visible {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d/%d  rec %s", gen, maxGen, h.out))
}
