package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	_ "github.com/vovakirdan/tui-pong/internal/games/pong" // registers "pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pong",
	Long: `Start a game in this terminal. You control the right paddle.

Controls:
  Up/W       - Move paddle up
  Down/S     - Move paddle down
  Space      - Start (or play again after game over)
  R          - Restart from scratch
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --seed 42
  pong play --config ./my-pong.yaml --log-file ~/.pong/pong.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// The terminal belongs to the game; logs go to the file or nowhere.
	logger, err := newLogger("pong", nil)
	if err != nil {
		fatalf("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   flagPlayer,
	}

	game, err := registry.Create("pong", registry.Options{ConfigPath: flagConfig})
	if err != nil {
		fatalf("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}
