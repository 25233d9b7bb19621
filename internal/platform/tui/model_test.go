package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// scriptedGame ends with a fixed score after a number of ticks.
type scriptedGame struct {
	endAfter int
	ticks    int
	actions  []core.Action
	status   core.Status
	resets   int
	interval time.Duration
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
	g.status = core.Status{}
}

func (g *scriptedGame) TickInterval() time.Duration {
	if g.interval == 0 {
		return 10 * time.Millisecond
	}
	return g.interval
}

func (g *scriptedGame) Tick() core.Status {
	if g.status.Started && !g.status.GameOver {
		g.ticks++
		g.status.Ticks = g.ticks
		if g.ticks >= g.endAfter {
			g.status.GameOver = true
			g.status.LeftScore, g.status.RightScore = 4, 7
		}
	}
	return g.status
}

func (g *scriptedGame) Apply(a core.Action) core.Status {
	g.actions = append(g.actions, a)
	if a == core.ActionStart {
		if g.status.GameOver {
			g.status = core.Status{}
			g.ticks = 0
		}
		g.status.Started = true
	}
	return g.status
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) Status() core.Status { return g.status }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 100, Seed: 9, Player: "tester"}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelSavesFinishedMatchOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{endAfter: 3}
	m := NewModel(game, store, testConfig(), nil)
	m, _ = update(t, m, keyMsg(" "))

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if !m.Status().GameOver {
		t.Fatal("scripted game should be over")
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("saved %d matches, expected 1", len(matches))
	}
	got := matches[0]
	if got.Player != "tester" || got.Winner != "right" || got.RightScore != 7 || got.Ticks != 3 || got.Seed != 9 {
		t.Errorf("saved match = %+v", got)
	}

	// Start again and finish a second game
	m, _ = update(t, m, keyMsg(" "))
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	matches, _ = store.RecentMatches(10)
	if len(matches) != 2 {
		t.Errorf("saved %d matches after a second game, expected 2", len(matches))
	}
}

func TestModelKeys(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, nil, testConfig(), nil)

	m, _ = update(t, m, keyMsg("up"))
	m, _ = update(t, m, keyMsg("s"))
	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, keyMsg("x"))

	want := []core.Action{core.ActionUp, core.ActionDown, core.ActionRestart}
	if len(game.actions) != len(want) {
		t.Fatalf("actions = %v, expected %v", game.actions, want)
	}
	for i := range want {
		if game.actions[i] != want[i] {
			t.Errorf("actions[%d] = %v, expected %v", i, game.actions[i], want[i])
		}
	}

	_, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, nil, testConfig(), nil)
	m.screenshotDir = filepath.Join(t.TempDir(), "shots")

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "scripted") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, nil, testConfig(), nil)
	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View() should contain the rendered game")
	}
}

func TestGameKeyMap(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"w", core.ActionUp},
		{"up", core.ActionUp},
		{"s", core.ActionDown},
		{" ", core.ActionStart},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"ctrl+s", core.ActionNone},
		{"z", core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keys.Action(keyMsg(tt.key)); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should have 2 rows, got %q", out)
	}
}

func TestModelTicksAtGameInterval(t *testing.T) {
	game := &scriptedGame{endAfter: 100, interval: 30 * time.Millisecond}
	m := NewModel(game, nil, testConfig(), nil)

	_, next := update(t, m, TickMsg{})
	cmds := []struct {
		name string
		cmd  tea.Cmd
	}{
		{"init", m.Init()},
		{"tick", next},
	}
	for _, c := range cmds {
		name, cmd := c.name, c.cmd
		start := time.Now()
		msg := cmd()
		if _, ok := msg.(TickMsg); !ok {
			t.Fatalf("%s: cmd produced %T, expected TickMsg", name, msg)
		}
		if elapsed := time.Since(start); elapsed < game.interval {
			t.Errorf("%s: tick fired after %v, expected at least %v", name, elapsed, game.interval)
		}
	}
}
