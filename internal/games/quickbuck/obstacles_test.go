package quickbuck

import (
	"testing"
	"time"

	"github.com/vovakirdan/quickbuck/internal/core"
)

func TestMoveObstacles(t *testing.T) {
	obstacles := []Obstacle{
		{Lane: LaneLeft, Pos: core.V2(-testLaneSize, 700)},
		{Lane: LaneMiddle, Pos: core.V2(0, 120.5)},
		{Lane: LaneRight, Pos: core.V2(testLaneSize, -4000)},
	}
	start := make([]core.Vec2, len(obstacles))
	for i, o := range obstacles {
		start[i] = o.Pos
	}

	for _, dt := range []time.Duration{16 * time.Millisecond, 100 * time.Millisecond, 3 * time.Second} {
		for i, o := range obstacles {
			start[i] = o.Pos
		}

		MoveObstacles(obstacles, 250, dt)

		for i, o := range obstacles {
			want := start[i].Y - 250*dt.Seconds()
			if o.Pos.Y != want {
				t.Errorf("dt=%s obstacle %d: y = %f, expected %f", dt, i, o.Pos.Y, want)
			}
			if o.Pos.X != start[i].X {
				t.Errorf("dt=%s obstacle %d: x changed to %f", dt, i, o.Pos.X)
			}
		}
	}
}

func TestMoveObstaclesNeverRemoves(t *testing.T) {
	obstacles := []Obstacle{{Pos: core.V2(0, 700)}}

	for i := 0; i < 1000; i++ {
		MoveObstacles(obstacles, 250, time.Second)
	}
	if len(obstacles) != 1 {
		t.Fatalf("obstacle count changed to %d", len(obstacles))
	}
	if obstacles[0].Pos.Y != 700-250*1000 {
		t.Errorf("y = %f, expected %d", obstacles[0].Pos.Y, 700-250*1000)
	}
}
