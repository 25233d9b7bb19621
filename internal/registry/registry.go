// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game is what the platform needs from a game. Games contain pure logic
// with no external dependencies (especially no Bubble Tea); the platform
// handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier, used for match records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns the game to its initial state.
	// The RuntimeConfig provides the screen size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// TickInterval is the fixed step the platform schedules Tick at.
	TickInterval() time.Duration

	// Tick advances the simulation by one fixed step.
	Tick() core.Status

	// Apply handles a player action between ticks.
	Apply(a core.Action) core.Status

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// Status returns the current score and lifecycle flags.
	Status() core.Status
}

// Options are passed to a factory when a game is created.
type Options struct {
	ConfigPath string // Explicit config file; empty uses the search path
}

// Factory creates a new instance of a game.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create instantiates a new game by its ID.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// IDs returns the registered game IDs in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
