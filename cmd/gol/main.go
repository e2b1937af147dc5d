//go:build ebiten

package main

import (
	"errors"
	"log"

	"gol-gif/internal/app"
	"gol-gif/internal/rec"
	"gol-gif/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	cfg := app.NewConfig()
	cfg.Bind()

	sim := life.New(cfg.Width, cfg.Height, cfg.Density, life.DefaultPlacements())
	sim.Reset(cfg.Seed)

	recorder, err := rec.NewGIF(cfg.Out, cfg.Width, cfg.Height, cfg.FPS)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, recorder, cfg)

	ebiten.SetWindowTitle("gol-gif — ESC to exit")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	runErr := ebiten.RunGame(game)

	// Finalize the animation even when the run ended early, so the
	// frames recorded so far remain playable.
	if cerr := recorder.Close(); cerr != nil {
		log.Fatal(cerr)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
	log.Printf("recorded %d generations to %s", recorder.Frames(), cfg.Out)
}
