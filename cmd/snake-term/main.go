package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"

	"railsnake/internal/audio"
	"railsnake/internal/sims/snake"
	"railsnake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	preset := flag.String("preset", "", "board preset: small, medium or large")
	size := flag.Int("size", 0, "board edge in cells, overrides -preset")
	interval := flag.Int("interval", 0, "milliseconds per move")
	seed := flag.Int64("seed", 1, "seed for food placement")
	mute := flag.Bool("mute", false, "disable sound")
	volume := flag.Float64("volume", 0.4, "sound volume in [0,1]")
	flag.Parse()

	opts := map[string]string{"seed": strconv.FormatInt(*seed, 10)}
	if *preset != "" {
		opts["preset"] = *preset
	}
	if *size > 0 {
		opts["size"] = strconv.Itoa(*size)
	}
	if *interval > 0 {
		opts["interval_ms"] = strconv.Itoa(*interval)
	}
	game := snake.New(snake.FromMap(opts))

	var player term.Player
	if !*mute {
		sm := audio.NewSoundManager(*volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer sm.Close()
			player = sm
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, game, player, *seed).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("final %s", game.StatusLine())
}
