package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/desiplay/teenpatti/internal/hand"
	"github.com/desiplay/teenpatti/internal/simulator"
)

var CLI struct {
	Rounds      int    `short:"r" default:"1000" help:"Number of rounds to simulate"`
	Seats       int    `short:"s" default:"4" help:"Seats at the table (3-6)"`
	Seed        int64  `default:"1" help:"Base seed for deterministic batches"`
	Variant     string `short:"v" default:"classic" help:"Variant: classic, joker, muflis or ak47"`
	Boot        int    `default:"10" help:"Boot amount"`
	Parallelism int    `short:"p" help:"Concurrent rounds (defaults to CPU count)"`
	LogLevel    string `short:"l" default:"warn" help:"Log level"`
}

func main() {
	kctx := kong.Parse(&CLI)

	logger := log.New(os.Stderr)
	switch CLI.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := simulator.Run(ctx, simulator.Config{
		Rounds:      CLI.Rounds,
		Seats:       CLI.Seats,
		Seed:        CLI.Seed,
		BootAmount:  CLI.Boot,
		Variant:     hand.Variant(CLI.Variant),
		Parallelism: CLI.Parallelism,
		Logger:      logger.WithPrefix("sim"),
	})
	if err != nil {
		logger.Error("Simulation failed", "error", err)
		kctx.Exit(1)
	}

	fmt.Printf("simulated %d rounds of %s teen patti in %s\n\n",
		CLI.Rounds, CLI.Variant, time.Since(start).Round(time.Millisecond))
	fmt.Print(stats)

	if stats.ChipErrors > 0 {
		kctx.Exit(1)
	}
}
