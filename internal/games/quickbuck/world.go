package quickbuck

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quickbuck/internal/config"
	"github.com/vovakirdan/quickbuck/internal/core"
)

// Surface receives the visual rectangles the simulation creates and moves.
// core.Scene is the implementation used by the game.
type Surface interface {
	Spawn(sp core.Sprite) core.EntityID
	Move(id core.EntityID, pos core.Vec2) bool
}

// World owns every entity of one play session and runs the per-frame systems.
type World struct {
	cfg       config.QuickBuckConfig
	laneSize  float64
	surface   Surface
	logger    *log.Logger
	player    *Player
	spawner   *Spawner
	obstacles []Obstacle
	frames    int
	elapsed   time.Duration
}

// NewWorld sets up a session: it spawns the player in the middle lane and
// starts the spawn timer.
func NewWorld(cfg config.QuickBuckConfig, surface Surface, seed int64, logger *log.Logger) *World {
	laneSize := cfg.LaneSize()
	w := &World{
		cfg:       cfg,
		laneSize:  laneSize,
		surface:   surface,
		logger:    logger,
		spawner:   NewSpawner(cfg.Obstacles, laneSize, seed),
		obstacles: make([]Obstacle, 0, 16),
	}

	// Player sits one lane-size above the bottom edge.
	p := NewPlayer(cfg.Player, laneSize, -cfg.Field.Height/2+laneSize)
	p.Entity = surface.Spawn(core.Sprite{
		Tag:   core.TagPlayer,
		Pos:   p.Pos(),
		Size:  core.V2(laneSize, laneSize),
		Color: core.ParseColor(cfg.Player.Color),
	})
	w.player = p

	logger.Debug("world ready", "lane_size", laneSize, "player_y", p.Y, "seed", seed)
	return w
}

// Tick runs one frame: spawn, obstacle motion, input, player tween.
// Input is applied before the tween so a lane change moves the player in the same frame.
// Returns true if an obstacle was spawned.
func (w *World) Tick(in core.InputFrame, dt time.Duration) bool {
	w.frames++
	w.elapsed += dt

	// Obstacles spawned this frame start falling next frame.
	existing := len(w.obstacles)
	spawned := w.spawnObstacles(dt)
	w.moveObstacles(w.obstacles[:existing], dt)
	w.handleInput(in)
	w.movePlayer(dt)
	return spawned
}

func (w *World) spawnObstacles(dt time.Duration) bool {
	o, ok := w.spawner.Tick(dt)
	if !ok {
		return false
	}

	size := w.cfg.Obstacles.Size
	o.Entity = w.surface.Spawn(core.Sprite{
		Tag:   core.TagObstacle,
		Pos:   o.Pos,
		Size:  core.V2(size, size),
		Color: core.ParseColor(w.cfg.Obstacles.Color),
	})
	w.obstacles = append(w.obstacles, o)

	w.logger.Debug("obstacle spawned", "lane", o.Lane, "x", o.Pos.X, "y", o.Pos.Y, "frame", w.frames)
	return true
}

func (w *World) moveObstacles(obstacles []Obstacle, dt time.Duration) {
	MoveObstacles(obstacles, w.cfg.Obstacles.Speed, dt)
	for _, o := range obstacles {
		w.surface.Move(o.Entity, o.Pos)
	}
}

func (w *World) handleInput(in core.InputFrame) {
	p := w.Player()
	if p.HandleInput(in) {
		w.logger.Debug("lane changed", "lane", p.Lane, "target", p.TargetX())
	}
}

func (w *World) movePlayer(dt time.Duration) {
	p := w.Player()
	before := p.RenderedX
	p.Advance(dt)
	if p.RenderedX != before {
		w.logger.Debug("tween", "x", p.RenderedX, "target", p.TargetX())
	}
	if !w.surface.Move(p.Entity, p.Pos()) {
		panic("quickbuck: player entity missing from surface")
	}
}

// Player returns the session's player. A world without a player is a setup bug.
func (w *World) Player() *Player {
	if w.player == nil {
		panic("quickbuck: world has no player")
	}
	return w.player
}

// Obstacles returns the live obstacles in spawn order. Callers must not modify it.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Spawner returns the obstacle spawner.
func (w *World) Spawner() *Spawner {
	return w.spawner
}

// Frames returns how many frames the world has simulated.
func (w *World) Frames() int {
	return w.frames
}

// Elapsed returns the simulated time.
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

// LaneSize returns the distance between adjacent lane centres.
func (w *World) LaneSize() float64 {
	return w.laneSize
}
