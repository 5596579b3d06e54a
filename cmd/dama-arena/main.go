// dama-arena plays batches of engine-versus-engine dama games and reports
// the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/dama-go/internal/arena"
	"github.com/lgbarn/dama-go/internal/config"
	"github.com/lgbarn/dama-go/internal/output"
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
		fmt.Printf("dama-arena version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "dama-arena: %v\n", err)
		os.Exit(1)
	}
}

// run plays the match described by cfg and closes any output files.
func run(ctx context.Context, cfg *config.Config) error {
	_, err := arena.Run(ctx, cfg, output.NewResultWriter(cfg.OutputFile, cfg))
	for _, w := range []io.Writer{cfg.OutputFile, cfg.LogFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}
	return err
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dama-arena [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play engine-versus-engine dama games and summarize the results.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEach game opens with -random random plies drawn from its own seed,\n")
	fmt.Fprintf(os.Stderr, "so a run is reproducible for a given -seed.\n")
}
