package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	played := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	id, err := store.SaveMatch(MatchResult{
		GameID:     "pong",
		Player:     "alice",
		Seed:       42,
		LeftScore:  3,
		RightScore: 7,
		Winner:     "right",
		Ticks:      12000,
		CreatedAt:  played,
	})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveMatch() id %q is not a UUID: %v", id, err)
	}

	m, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}
	if m.Player != "alice" || m.LeftScore != 3 || m.RightScore != 7 || m.Winner != "right" {
		t.Errorf("MatchByID() = %+v", m)
	}
	if m.Seed != 42 || m.Ticks != 12000 {
		t.Errorf("Seed/Ticks = %d/%d, expected 42/12000", m.Seed, m.Ticks)
	}
	if !m.CreatedAt.Equal(played) {
		t.Errorf("CreatedAt = %v, expected %v", m.CreatedAt, played)
	}
}

func TestStoreMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	m, err := store.MatchByID("missing")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m != nil {
		t.Errorf("MatchByID() = %+v, expected nil", m)
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(MatchResult{ID: "fixed", GameID: "pong", Player: "bob", Winner: "left"})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("SaveMatch() id = %q, expected fixed", id)
	}

	if _, err := store.SaveMatch(MatchResult{ID: "fixed", GameID: "pong", Player: "bob", Winner: "left"}); err == nil {
		t.Error("SaveMatch() with a duplicate ID should fail")
	}
}

func TestStoreRecentMatches(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		_, err := store.SaveMatch(MatchResult{
			GameID:     "pong",
			Player:     "alice",
			RightScore: i,
			Winner:     "left",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 10 {
		t.Fatalf("Expected 10 matches, got %d", len(matches))
	}
	if matches[0].RightScore != 24 || matches[9].RightScore != 15 {
		t.Errorf("matches not newest first: first=%d last=%d", matches[0].RightScore, matches[9].RightScore)
	}

	// Default limit
	matches, err = store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 20 {
		t.Errorf("Expected 20 matches, got %d", len(matches))
	}
}

func TestStoreRecord(t *testing.T) {
	store := openTestStore(t)

	results := []struct {
		player string
		winner string
	}{
		{"alice", "right"},
		{"alice", "right"},
		{"alice", "left"},
		{"bob", "right"},
	}
	for _, r := range results {
		if _, err := store.SaveMatch(MatchResult{GameID: "pong", Player: r.player, Winner: r.winner}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	rec, err := store.Record("alice", "right")
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if rec.Played != 3 || rec.Wins != 2 || rec.Losses != 1 {
		t.Errorf("Record() = %+v, expected 3 played, 2 wins, 1 loss", rec)
	}
	if rec.LastPlayed.IsZero() {
		t.Error("Record() should report when the player last played")
	}

	rec, err = store.Record("nobody", "right")
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if rec.Played != 0 || !rec.LastPlayed.IsZero() {
		t.Errorf("Record() for unknown player = %+v", rec)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.SaveMatch(MatchResult{GameID: "pong", Player: "alice", Winner: "left"}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected 0 matches after clear, got %d", len(matches))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
