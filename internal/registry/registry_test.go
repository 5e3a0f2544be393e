package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/quickbuck/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestRegisterCreateList(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("Create returned %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub-") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "stub-a" || ids[1] != "stub-b" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create should fail for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
