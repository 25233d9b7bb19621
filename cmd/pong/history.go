package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagPlain   bool
	flagClear   bool
	flagMatchID string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished matches",
	Long: `Show the most recent finished matches and your win/loss record.

Examples:
  pong history
  pong history --plain
  pong history --player alice --db ./matches.db
  pong history --id 3f6c2a10-...
  pong history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table instead of the interactive view")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored match")
	historyCmd.Flags().StringVar(&flagMatchID, "id", "", "Show a single match by ID")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening match database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearMatches(); err != nil {
			fatalf("clearing matches: %v", err)
		}
		fmt.Println("Match history cleared.")
		return
	case flagMatchID != "":
		printMatch(store, flagMatchID)
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, flagPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	printHistory(store)
}

func printHistory(store *storage.Store) {
	matches, err := store.RecentMatches(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game with 'pong play' to see it here!")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-5s  %-6s\n", "Date", "Player", "Score", "Result")
	fmt.Printf("  %-16s  %-12s  %-5s  %-6s\n", "----", "------", "-----", "------")
	for _, m := range matches {
		result := "lost"
		if m.Winner == "right" {
			result = "won"
		}
		score := fmt.Sprintf("%d-%d", m.LeftScore, m.RightScore)
		fmt.Printf("  %-16s  %-12s  %-5s  %-6s\n", m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Player, score, result)
	}

	fmt.Println()
	if rec, err := store.Record(flagPlayer, "right"); err == nil && rec.Played > 0 {
		fmt.Printf("%s: %d played, %d won, %d lost\n", rec.Player, rec.Played, rec.Wins, rec.Losses)
	}
}

func printMatch(store *storage.Store, id string) {
	m, err := store.MatchByID(id)
	if err != nil {
		fatalf("looking up match: %v", err)
	}
	if m == nil {
		fatalf("no match with id %s", id)
	}

	fmt.Printf("Match   %s\n", m.ID)
	fmt.Printf("Date    %s\n", m.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Player  %s\n", m.Player)
	fmt.Printf("Score   CPU %d : %d %s\n", m.LeftScore, m.RightScore, m.Player)
	fmt.Printf("Winner  %s\n", m.Winner)
	fmt.Printf("Ticks   %d\n", m.Ticks)
	fmt.Printf("Seed    %d\n", m.Seed)
}
