// breakout is a terminal Breakout game.
//
// Usage:
//
//	breakout [flags]
//
// Flags:
//
//	--config <path>     - YAML or TOML config file (default: search ~/.arcade/configs, ./configs)
//	--fps <rate>        - Set tick rate (default: 60)
//	--log-file <path>   - Write logs to this file (default: discard)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - clear the wall of blocks in your terminal",
	Long: `Breakout is a terminal game: keep the ball in play with the paddle
and knock out all 48 blocks.

Controls:
  Left/A/H    - Move paddle left
  Right/D/L   - Move paddle right
  Q/Esc       - Quit

Examples:
  breakout
  breakout --fps 30
  breakout --config ./my-breakout.toml --log-file breakout.log --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}
