package quickbuck

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/quickbuck/internal/config"
	"github.com/vovakirdan/quickbuck/internal/core"
)

// Spawner creates one obstacle in a random lane every time its timer fires.
type Spawner struct {
	timer    *Timer
	rng      *rand.Rand
	laneSize float64
	height   float64
}

// NewSpawner creates a spawner whose timer starts running immediately.
func NewSpawner(cfg config.ObstacleConfig, laneSize float64, seed int64) *Spawner {
	return &Spawner{
		timer:    NewTimer(cfg.SpawnPeriod),
		rng:      rand.New(rand.NewSource(seed)),
		laneSize: laneSize,
		height:   cfg.SpawnHeight,
	}
}

// Tick advances the spawn timer by dt. When the timer fires it returns the new
// obstacle, placed at its lane's centre and the spawn height.
func (s *Spawner) Tick(dt time.Duration) (Obstacle, bool) {
	if !s.timer.Tick(dt) {
		return Obstacle{}, false
	}

	lane := RandomLane(s.rng)
	return Obstacle{
		Lane: lane,
		Pos:  core.V2(lane.CenterX(s.laneSize), s.height),
	}, true
}

// Timer exposes the spawn timer.
func (s *Spawner) Timer() *Timer {
	return s.timer
}
