// Command snowmaze plays the maze chase in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/snowmaze/config"
	"github.com/beka-birhanu/snowmaze/game"
	"github.com/gdamore/tcell/v2"
)

func main() {
	lang := flag.String("lang", "en", "language for messages (en, ru)")
	dump := flag.Bool("dump", false, "print the generated maze and exit")
	seed := flag.Int64("seed", 0, "maze seed, 0 picks one from the clock")
	configPath := flag.String("config", "", "YAML game tuning file")
	flag.Parse()

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = cfg.Maze.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if *dump {
		sim, err := game.NewGame(cfg.Setup(*seed))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate maze: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(renderDump(sim.Snapshot()))
		return
	}

	tr, err := loadTranslations(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load translations: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	c, err := newClient(screen, cfg, tr, *seed)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	c.run()
}
