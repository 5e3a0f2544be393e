// Package quickbuck implements Quick Buck, a three-lane dodger.
// The player shifts between lanes while obstacles spawn at the top of the
// field once per period and fall at a constant speed.
package quickbuck

import "math/rand"

// Lane is one of the three horizontal player positions.
// Its value is the lane's signed offset from the middle, so the zero value is LaneMiddle.
type Lane int8

const (
	LaneLeft   Lane = -1
	LaneMiddle Lane = 0
	LaneRight  Lane = 1
)

// Lanes lists every lane from left to right.
var Lanes = [...]Lane{LaneLeft, LaneMiddle, LaneRight}

// LaneFromOffset maps any integer onto a lane by its sign.
// Negative values give LaneLeft, zero gives LaneMiddle, positive values give LaneRight.
func LaneFromOffset(n int) Lane {
	switch {
	case n < 0:
		return LaneLeft
	case n > 0:
		return LaneRight
	default:
		return LaneMiddle
	}
}

// Offset returns -1, 0 or +1.
func (l Lane) Offset() int {
	return int(l)
}

// Step moves one lane in the direction of dir, which is LaneLeft or LaneRight.
// Stepping past an edge lane stays on that edge.
func (l Lane) Step(dir Lane) Lane {
	return LaneFromOffset(l.Offset() + dir.Offset())
}

// CenterX returns the world x-coordinate of the lane's centre.
func (l Lane) CenterX(laneSize float64) float64 {
	return laneSize * float64(l.Offset())
}

// String returns a human-readable name for the lane.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneMiddle:
		return "middle"
	case LaneRight:
		return "right"
	default:
		return "invalid"
	}
}

// MarshalText lets snapshots print lanes by name.
func (l Lane) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// RandomLane draws a lane uniformly from a value in [-1, 1].
func RandomLane(rng *rand.Rand) Lane {
	return LaneFromOffset(rng.Intn(3) - 1)
}
