//go:build !ebiten

package ui

// HUD is a no-op placeholder so the package builds headless.
type HUD struct{}

// NewHUD returns the placeholder HUD.
func NewHUD(string) *HUD { return &HUD{} }

// Update is a no-op in headless builds.
func (h *HUD) Update() {}

// Draw is a no-op in headless builds.
func (h *HUD) Draw(screen any, gen, maxGen int) {}
