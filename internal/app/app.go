//go:build ebiten

package app

import (
	"image/color"

	"gol-gif/internal/render"
	"gol-gif/internal/ui"
	"gol-gif/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FrameSink receives one index snapshot per completed generation.
type FrameSink interface {
	Append(indices []uint8) error
}

// Game adapts a simulation plus a frame sink to the ebiten.Game
// interface: each paced tick advances one generation and appends it to
// the sink before anything is drawn.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	sink    FrameSink
	pace    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	gen    int
	maxGen int
}

// New constructs a Game for the provided simulation and sink. The pace
// controller keeps the simulation at cfg.FPS generations per second while
// the window itself runs at the normal tick rate, so input stays
// responsive however slow the recording is.
func New(sim core.Sim, sink FrameSink, cfg *Config) *Game {
	s := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(s.W, s.H, cfg.Scale),
		hud:      ui.NewHUD(cfg.Out),
		sink:     sink,
		pace:     core.NewFixedStep(cfg.FPS),
		onColor:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		offColor: color.RGBA{R: 0x00, G: 0x11, B: 0x22, A: 0xff},
		maxGen:   cfg.MaxGen,
	}
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.hud.Update()

	if g.gen >= g.maxGen {
		return ebiten.Termination
	}
	if g.pace.ShouldStep() {
		g.sim.Step()
		g.gen++
		if g.sink != nil {
			if exp, ok := g.sim.(core.IndexExporter); ok {
				if err := g.sink.Append(exp.ExportIndices()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Draw renders the current simulation state and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor)
	g.hud.Draw(screen, g.gen, g.maxGen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
