package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scenario string
	Seed     int64
	TPS      int
	Width    int
	Height   int
	// Serve is the telemetry listen address; empty disables the server.
	Serve string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scenario: "freight", Seed: 42, TPS: 60, Width: 768, Height: 768}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "scenario to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scenario reset")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Serve, "serve", c.Serve, "telemetry websocket address (empty = off)")
}
