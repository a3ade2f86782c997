//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridlock/internal/app"
	"gridlock/internal/core"
	_ "gridlock/internal/sim/freight"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Scenarios()[cfg.Scenario]
	if !ok {
		log.Fatalf("unknown scenario %q", cfg.Scenario)
	}

	scn := factory(nil)
	scn.Reset(cfg.Seed)

	game := app.New(scn, cfg)

	ebiten.SetWindowTitle("gridlock — " + scn.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
