package quickbuck

import (
	"time"

	"github.com/vovakirdan/quickbuck/internal/config"
	"github.com/vovakirdan/quickbuck/internal/core"
)

// Player is the lane-shifting entity the user controls.
// Lane is authoritative and changes instantly on input; RenderedX follows it
// at constant speed until it is close enough to snap.
type Player struct {
	Lane      Lane
	RenderedX float64
	Y         float64
	Entity    core.EntityID

	laneSize float64
	speed    float64
	snap     float64
}

// NewPlayer creates a player in the middle lane with its tween at x = 0.
func NewPlayer(cfg config.PlayerConfig, laneSize, y float64) *Player {
	return &Player{
		Lane:     LaneMiddle,
		Y:        y,
		laneSize: laneSize,
		speed:    cfg.Speed,
		snap:     cfg.SnapDistance,
	}
}

// HandleInput applies at most one lane change for the frame.
// Right is checked first, so a frame holding both directions moves right.
// Returns true if the lane changed.
func (p *Player) HandleInput(in core.InputFrame) bool {
	prev := p.Lane
	switch {
	case in.Has(core.ActionRight):
		p.Lane = p.Lane.Step(LaneRight)
	case in.Has(core.ActionLeft):
		p.Lane = p.Lane.Step(LaneLeft)
	}
	return p.Lane != prev
}

// TargetX returns the x-coordinate the tween is heading for.
func (p *Player) TargetX() float64 {
	return p.Lane.CenterX(p.laneSize)
}

// Advance moves RenderedX toward TargetX by speed*dt.
// Within the snap distance, or when the step would cross the target, it lands exactly on it.
func (p *Player) Advance(dt time.Duration) float64 {
	target := p.TargetX()
	dist := p.RenderedX - target

	if core.AbsF(dist) <= p.snap {
		p.RenderedX = target
		return p.RenderedX
	}

	step := p.speed * dt.Seconds()
	if step >= core.AbsF(dist) {
		p.RenderedX = target
		return p.RenderedX
	}
	p.RenderedX -= core.SignF(dist) * step
	return p.RenderedX
}

// Settled reports whether the tween rests on the current lane.
func (p *Player) Settled() bool {
	return p.RenderedX == p.TargetX()
}

// Pos returns the player's centre in world units.
func (p *Player) Pos() core.Vec2 {
	return core.V2(p.RenderedX, p.Y)
}
