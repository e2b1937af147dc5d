//go:build !ebiten

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gol-gif/internal/app"
	"gol-gif/internal/rec"
	"gol-gif/pkg/sims/life"

	"github.com/logrusorgru/aurora"
)

// The default build runs headless: same simulation, same recording, no
// window. Build with `-tags ebiten` for the live display.
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

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("recording %d generations to %v\n", cfg.MaxGen, aurora.Cyan(cfg.Out))
loop:
	for gen := 1; gen <= cfg.MaxGen; gen++ {
		select {
		case <-sigCh:
			fmt.Println(aurora.Red("interrupted, finalizing recording"))
			break loop
		default:
		}
		sim.Step()
		if err := recorder.Append(sim.ExportIndices()); err != nil {
			recorder.Close()
			log.Fatal(err)
		}
		if gen%20 == 0 {
			fmt.Printf("  generation %v/%d\n", aurora.Green(gen), cfg.MaxGen)
		}
	}
	if err := recorder.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v %d frames written\n", aurora.Green("done:"), recorder.Frames())
}
