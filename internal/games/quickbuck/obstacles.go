package quickbuck

import (
	"time"

	"github.com/vovakirdan/quickbuck/internal/core"
)

// Obstacle is a falling block. Its x is fixed at spawn; only y changes.
// Obstacles are never removed, including after they leave the field.
type Obstacle struct {
	Lane   Lane
	Pos    core.Vec2
	Entity core.EntityID
}

// MoveObstacles lowers every obstacle by speed*dt.
func MoveObstacles(obstacles []Obstacle, speed float64, dt time.Duration) {
	dy := speed * dt.Seconds()
	for i := range obstacles {
		obstacles[i].Pos.Y -= dy
	}
}
