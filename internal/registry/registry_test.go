package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                    { return g.id }
func (g stubGame) Title() string                 { return "Stub" }
func (g stubGame) Reset(core.RuntimeConfig)      {}
func (g stubGame) TickInterval() time.Duration   { return 10 * time.Millisecond }
func (g stubGame) Tick() core.Status             { return core.Status{} }
func (g stubGame) Apply(core.Action) core.Status { return core.Status{} }
func (g stubGame) Render(*core.Screen)           {}
func (g stubGame) Status() core.Status           { return core.Status{} }

func TestRegisterAndCreate(t *testing.T) {
	var gotOpts Options
	Register("stub-create", func(opts Options) (Game, error) {
		gotOpts = opts
		return stubGame{id: "stub-create"}, nil
	})

	g, err := Create("stub-create", Options{ConfigPath: "custom.yaml"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-create" {
		t.Errorf("ID() = %q", g.ID())
	}
	if gotOpts.ConfigPath != "custom.yaml" {
		t.Errorf("factory got %+v", gotOpts)
	}

	found := false
	for _, id := range IDs() {
		if id == "stub-create" {
			found = true
		}
	}
	if !found {
		t.Error("IDs() should list the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game", Options{}); err == nil {
		t.Error("Create() should fail for an unknown game")
	}
}

func TestCreateWrapsFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("stub-fail", func(Options) (Game, error) { return nil, boom })

	if _, err := Create("stub-fail", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected to wrap %v", err, boom)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func(Options) (Game, error) { return stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("second Register() should panic")
		}
	}()
	Register("stub-dup", func(Options) (Game, error) { return stubGame{}, nil })
}
