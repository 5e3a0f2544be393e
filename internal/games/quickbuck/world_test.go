package quickbuck

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quickbuck/internal/config"
	"github.com/vovakirdan/quickbuck/internal/core"
)

// countingSurface wraps a scene and counts moves.
type countingSurface struct {
	*core.Scene
	moves int
}

func (s *countingSurface) Move(id core.EntityID, pos core.Vec2) bool {
	s.moves++
	return s.Scene.Move(id, pos)
}

func newTestWorld(seed int64) (*World, *countingSurface) {
	surface := &countingSurface{Scene: core.NewScene()}
	w := NewWorld(config.DefaultQuickBuckConfig(), surface, seed, log.New(io.Discard))
	return w, surface
}

func TestWorldObstacleFallsFromNextFrame(t *testing.T) {
	w, surface := newTestWorld(3)
	empty := core.NewInputFrame()

	// One long frame fires the timer once.
	if !w.Tick(empty, time.Second) {
		t.Fatal("expected a spawn after one second")
	}
	o := w.Obstacles()[0]
	if o.Pos.Y != 700 {
		t.Errorf("obstacle y on spawn frame = %f, expected 700", o.Pos.Y)
	}

	w.Tick(empty, 100*time.Millisecond)
	o = w.Obstacles()[0]
	if math.Abs(o.Pos.Y-675) > 1e-9 {
		t.Errorf("obstacle y after 100ms = %f, expected 675", o.Pos.Y)
	}

	sp, ok := surface.Sprite(o.Entity)
	if !ok || sp.Pos != o.Pos {
		t.Errorf("surface sprite = %+v, expected position %+v", sp.Pos, o.Pos)
	}
	if sp.Tag != core.TagObstacle || sp.Size != core.V2(50, 50) {
		t.Errorf("obstacle sprite = %+v, expected 50x50 obstacle", sp)
	}
}

func TestWorldLaneChangeMovesPlayerSameFrame(t *testing.T) {
	w, surface := newTestWorld(1)

	w.Tick(input(core.ActionLeft), frameDT)

	p := w.Player()
	if p.Lane != LaneLeft {
		t.Fatalf("Lane = %s, expected left", p.Lane)
	}
	if p.RenderedX >= 0 {
		t.Errorf("RenderedX = %f, expected movement toward the left lane", p.RenderedX)
	}
	sp, _ := surface.Sprite(p.Entity)
	if sp.Pos.X != p.RenderedX {
		t.Errorf("player sprite x = %f, expected %f", sp.Pos.X, p.RenderedX)
	}
}

func TestWorldCountsFramesAndTime(t *testing.T) {
	w, _ := newTestWorld(1)
	empty := core.NewInputFrame()

	for range 10 {
		w.Tick(empty, frameDT)
	}
	if w.Frames() != 10 {
		t.Errorf("Frames() = %d, expected 10", w.Frames())
	}
	if w.Elapsed() != 160*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 160ms", w.Elapsed())
	}
}

func TestWorldPanicsWithoutPlayerEntity(t *testing.T) {
	w, surface := newTestWorld(1)
	surface.Despawn(w.Player().Entity)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic when the player entity is gone")
		}
	}()
	w.Tick(core.NewInputFrame(), frameDT)
}

func TestWorldWritesEveryFrame(t *testing.T) {
	w, surface := newTestWorld(1)
	w.Tick(core.NewInputFrame(), frameDT)

	// Settled player is still written back once per frame.
	if surface.moves != 1 {
		t.Errorf("surface moves = %d, expected 1", surface.moves)
	}
}
