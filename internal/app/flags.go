package app

import "github.com/integrii/flaggy"

// Config represents the start-time parameters of a run. There is no
// runtime reconfiguration: everything is fixed before the first
// generation.
type Config struct {
	Width   int
	Height  int
	Scale   int
	FPS     int
	MaxGen  int
	Density float64
	Seed    int64
	Out     string
}

// NewConfig returns a Config populated with the stock defaults: a
// 100x100 grid shown at 8x magnification, 10 generations per second,
// 200 recorded generations, 15% initial density.
func NewConfig() *Config {
	return &Config{
		Width:   100,
		Height:  100,
		Scale:   8,
		FPS:     10,
		MaxGen:  200,
		Density: 0.15,
		Seed:    42,
		Out:     "life.gif",
	}
}

// Bind registers the configuration with flaggy and parses the command line.
func (c *Config) Bind() {
	flaggy.SetDescription("Conway's Game of Life with an animated GIF recording")
	flaggy.Int(&c.Width, "x", "width", "grid width in cells")
	flaggy.Int(&c.Height, "y", "height", "grid height in cells")
	flaggy.Int(&c.Scale, "c", "scale", "display magnification per cell")
	flaggy.Int(&c.FPS, "f", "fps", "generations per second, also the GIF frame rate")
	flaggy.Int(&c.MaxGen, "g", "generations", "number of generations to record")
	flaggy.Float64(&c.Density, "d", "density", "probability that a cell starts alive")
	flaggy.Int64(&c.Seed, "s", "seed", "seed for the random fill")
	flaggy.String(&c.Out, "o", "out", "animation output filename")
	flaggy.Parse()
}
