//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"sort"
	"strings"

	"railsnake/internal/app"
	"railsnake/internal/core"
	_ "railsnake/internal/sims/snake"
	_ "railsnake/internal/sims/train"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, available())
	}

	sim := factory(cfg.Options)
	sim.Reset(cfg.Seed)

	scale := cfg.ScaleFor(sim.Size())
	game := app.New(sim, scale, cfg.HUDWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("railsnake: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*scale+max(cfg.HUDWidth, 0), size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func available() string {
	names := make([]string, 0, len(core.Sims()))
	for name := range core.Sims() {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
