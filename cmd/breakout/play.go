package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = flagFPS

	game := breakout.New(cfg)
	state, err := tui.Run(game, rt, logger)
	if err != nil {
		logger.Error("terminal failure", "error", err)
		return fmt.Errorf("run breakout: %w", err)
	}

	printSummary(cmd.OutOrStdout(), state, game)
	return nil
}

// newLogger builds the game logger. Without a log file everything is
// discarded, since the game owns the terminal.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

func printSummary(w io.Writer, state core.GameState, game *breakout.Game) {
	if state.Won {
		fmt.Fprintf(w, "Field cleared! Score: %d\n", state.Score)
	} else {
		fmt.Fprintf(w, "Game over. Score: %d\n", state.Score)
	}
	snap := game.Snapshot()
	fmt.Fprintf(w, "Blocks left: %d, ticks: %d\n", snap.BlocksAlive, snap.Tick)
}
