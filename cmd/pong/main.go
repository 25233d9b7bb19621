// pong is a terminal Pong game against a ball-following CPU paddle.
//
// Usage:
//
//	pong play                - Play in this terminal
//	pong serve               - Start SSH server for remote play
//	pong sim                 - Run a headless, reproducible bot game
//	pong history             - Show finished matches
//	pong config              - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default: rules.tick_millis from config)
//	--seed <value>       - Set RNG seed for reproducible power-ups
//	--db <path>          - Set database path (default: ~/.pong/matches.db)
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a rotating file
//	--player <name>      - Name recorded with finished matches
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong is a two-paddle ball game for the terminal. You play the right
paddle against a CPU paddle that follows the ball. First to 7 wins.
Power-ups appear mid-table: P arms a power shot, G adds gravity.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless bot game
  history  - Show finished matches
  config   - Print the game configuration

Examples:
  pong play
  pong play --seed 42 --config ./my-pong.yaml
  pong serve --ssh :2222
  pong sim --ticks 20000 --seed 7 --yaml
  pong history`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = rules.tick_millis from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, except for sim)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name recorded with matches")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
}

func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// newLogger builds the command logger. Without --log-file it writes to
// console, which may be nil to discard.
func newLogger(prefix string, console *os.File) (*log.Logger, error) {
	opts := logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: prefix,
	}
	if console != nil {
		opts.Output = console
	}
	return logging.New(opts)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
