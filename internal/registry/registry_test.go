package registry

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub", Description: "test mode"}, stubFactory("zz_stub"))

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, expected zz_stub", g.ID())
	}

	var found *GameInfo
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = &info
		}
	}
	if found == nil {
		t.Fatal("List() should include the registered game")
	}
	if found.Title != "Stub" || found.Description != "test mode" {
		t.Errorf("List() entry = %+v", *found)
	}
}

func TestRegisterDefaultsTitle(t *testing.T) {
	Register(GameInfo{ID: "zz_untitled"}, stubFactory("zz_untitled"))

	for _, info := range List() {
		if info.ID == "zz_untitled" && info.Title != "zz_untitled" {
			t.Errorf("Title = %q, expected the ID", info.Title)
		}
	}
}

func TestListSorted(t *testing.T) {
	Register(GameInfo{ID: "zz_b"}, stubFactory("zz_b"))
	Register(GameInfo{ID: "zz_a"}, stubFactory("zz_a"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create() should fail for unknown games")
	}
}

func TestRegisterRejects(t *testing.T) {
	Register(GameInfo{ID: "zz_dup"}, stubFactory("zz_dup"))

	tests := []struct {
		name string
		info GameInfo
		f    Factory
	}{
		{"duplicate", GameInfo{ID: "zz_dup"}, stubFactory("zz_dup")},
		{"empty id", GameInfo{}, stubFactory("")},
		{"nil factory", GameInfo{ID: "zz_nil"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			Register(tt.info, tt.f)
		})
	}
}
