package quickbuck

// ObstacleSnapshot is the observable state of one obstacle.
type ObstacleSnapshot struct {
	Lane Lane    `yaml:"lane"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Snapshot captures the observable game state for determinism testing and the
// headless simulate command.
type Snapshot struct {
	Mode      Mode               `yaml:"mode"`
	Frames    int                `yaml:"frames"`
	Elapsed   float64            `yaml:"elapsed_seconds"`
	Lane      Lane               `yaml:"lane"`
	RenderedX float64            `yaml:"rendered_x"`
	Obstacles []ObstacleSnapshot `yaml:"obstacles"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Mode: g.mode}
	if g.world == nil {
		return s
	}

	p := g.world.Player()
	s.Frames = g.world.Frames()
	s.Elapsed = g.world.Elapsed().Seconds()
	s.Lane = p.Lane
	s.RenderedX = p.RenderedX
	s.Obstacles = make([]ObstacleSnapshot, 0, len(g.world.Obstacles()))
	for _, o := range g.world.Obstacles() {
		s.Obstacles = append(s.Obstacles, ObstacleSnapshot{Lane: o.Lane, X: o.Pos.X, Y: o.Pos.Y})
	}
	return s
}
