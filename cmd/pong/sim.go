package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSimTicks int
	flagSimSave  bool
	flagSimYAML  bool
	flagSimEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless bot game",
	Long: `Run the game without a terminal, with a built-in bot playing the right
paddle. Timing is synthetic, so the same --seed and config always produce
the same run and the same final hash.

Examples:
  pong sim --ticks 20000 --seed 7
  pong sim --seed 7 --yaml --every 500 > run.yaml
  pong sim --ticks 100000 --save --player bot`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 20000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store finished matches in the history database")
	simCmd.Flags().BoolVar(&flagSimYAML, "yaml", false, "Print the run report as YAML")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 0, "With --yaml, include a snapshot every N ticks")
}

// simMatch is one finished game within a run.
type simMatch struct {
	EndTick    int    `yaml:"end_tick"`
	LeftScore  int    `yaml:"left_score"`
	RightScore int    `yaml:"right_score"`
	Winner     string `yaml:"winner"`
	ID         string `yaml:"id,omitempty"`
}

// simReport is the YAML form of a run.
type simReport struct {
	Seed    int64           `yaml:"seed"`
	Ticks   int             `yaml:"ticks"`
	Matches []simMatch      `yaml:"matches"`
	Trace   []pong.Snapshot `yaml:"trace,omitempty"`
	Final   pong.Snapshot   `yaml:"final"`
	Hash    string          `yaml:"hash"`
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := newLogger("pong-sim", os.Stderr)
	if err != nil {
		fatalf("%v", err)
	}

	game, err := pong.NewFromConfig(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed, Player: flagPlayer})

	var store *storage.Store
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fatalf("opening match database: %v", err)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := simulate(ctx, game, store, logger)
	if err != nil {
		fatalf("simulation: %v", err)
	}

	if flagSimYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			fatalf("encoding report: %v", err)
		}
		//nolint:errcheck // stdout
		enc.Close()
		return
	}

	fmt.Printf("seed %d, %d ticks, %d matches finished\n", report.Seed, report.Ticks, len(report.Matches))
	fmt.Printf("score %d : %d\n", report.Final.ScoreLeft, report.Final.ScoreRight)
	fmt.Printf("hash %s\n", report.Hash)
}

// simulate plays the run and collects the report.
func simulate(ctx context.Context, game *pong.Game, store *storage.Store, logger *log.Logger) (simReport, error) {
	settings := game.Engine().Settings()
	report := simReport{Seed: flagSeed}

	prevOver := false
	matchStart := 0
	final, err := pong.Simulate(ctx, game.Engine(), pong.NewBot(settings), flagSimTicks, func(tick int, st pong.GameState) {
		report.Ticks = tick
		if flagSimEvery > 0 && tick%flagSimEvery == 0 {
			report.Trace = append(report.Trace, pong.NewSnapshot(tick, st))
		}

		if st.GameOver && !prevOver {
			m := simMatch{EndTick: tick, LeftScore: st.Score.Left, RightScore: st.Score.Right}
			if w, ok := st.Winner(settings.EndScore); ok {
				m.Winner = w.String()
			}
			if store != nil {
				id, saveErr := store.SaveMatch(storage.MatchResult{
					GameID:     game.ID(),
					Player:     flagPlayer,
					Seed:       flagSeed,
					LeftScore:  m.LeftScore,
					RightScore: m.RightScore,
					Winner:     m.Winner,
					Ticks:      tick - matchStart,
					CreatedAt:  time.Now(),
				})
				if saveErr != nil {
					logger.Warn("could not save match", "error", saveErr)
				}
				m.ID = id
			}
			logger.Info("match finished", "tick", tick, "winner", m.Winner, "left", m.LeftScore, "right", m.RightScore)
			report.Matches = append(report.Matches, m)
		}
		if !st.GameOver && prevOver {
			matchStart = tick
		}
		prevOver = st.GameOver
	})
	if err != nil {
		return report, err
	}

	report.Final = pong.NewSnapshot(report.Ticks, final)
	report.Hash = fmt.Sprintf("%016x", report.Final.Hash())
	logger.Debug("simulation done", "ticks", report.Ticks, "hash", report.Hash)
	return report, nil
}
