// dama is a terminal game of dama against the computer.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/dama-go/internal/config"
	"github.com/lgbarn/dama-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("dama version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(2)
	}

	game := session.New(cfg, rand.New(rand.NewSource(seedValue())))
	cfg.Logf(config.Summary, "game %s: human %s, computer %s, depth %d\n",
		game.ID, game.Human, game.AI, cfg.Search.Depth)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	newUI(screen, game, cfg).run()
	screen.Fini()

	fmt.Println(game.Status())
}

// setupLogFile points diagnostics at the -l file. Without one, logging is
// off because stderr shares the terminal with the board.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		cfg.LogFile = nil
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dama [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play dama against the computer in the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nControls:\n")
	fmt.Fprintf(os.Stderr, "  mouse   click one of your pieces, then a highlighted square\n")
	fmt.Fprintf(os.Stderr, "  q, Esc  quit\n")
}
