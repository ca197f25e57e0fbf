package registry

import (
	"testing"

	"github.com/vovakirdan/math-champions/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub" }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(Info{ID: "stub_b", Title: "B", Order: 90}, func(Env) Game { return stubGame{id: "stub_b"} })
	Register(Info{ID: "stub_a", Title: "A", Order: 91, Picker: PickDifficulty}, func(Env) Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Fatal("Exists() returned the wrong answer")
	}

	g, err := Create("stub_b", Env{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID() = %q, expected stub_b", g.ID())
	}

	if _, err := Create("stub_missing", Env{}); err == nil {
		t.Error("Create() with unknown ID should fail")
	}

	info, ok := Lookup("stub_a")
	if !ok || info.Picker != PickDifficulty {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}

	list := List()
	posA, posB := -1, -1
	for i, in := range list {
		switch in.ID {
		case "stub_a":
			posA = i
		case "stub_b":
			posB = i
		}
	}
	if posB < 0 || posA < 0 || posB > posA {
		t.Errorf("List() should order by Order, got %v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Info{ID: "stub_dup"}, func(Env) Game { return stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register(Info{ID: "stub_dup"}, func(Env) Game { return stubGame{} })
}
