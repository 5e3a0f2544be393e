package core

import "testing"

func TestSceneSpawnMoveDespawn(t *testing.T) {
	s := NewScene()

	p := s.Spawn(Sprite{Tag: TagPlayer, Pos: V2(0, -100), Size: V2(50, 50), Color: ColorCyan})
	o := s.Spawn(Sprite{Tag: TagObstacle, Pos: V2(100, 700), Size: V2(50, 50), Color: ColorRed})

	if p == 0 || o == 0 || p == o {
		t.Fatalf("unexpected IDs %d, %d", p, o)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
	if s.Count(TagObstacle) != 1 {
		t.Errorf("Count(TagObstacle) = %d, expected 1", s.Count(TagObstacle))
	}

	if !s.Move(p, V2(40, -100)) {
		t.Fatal("Move on live sprite should succeed")
	}
	sp, _ := s.Sprite(p)
	if sp.Pos != V2(40, -100) {
		t.Errorf("Pos = %+v after Move", sp.Pos)
	}

	if !s.Despawn(o) {
		t.Fatal("Despawn on live sprite should succeed")
	}
	if s.Move(o, V2(0, 0)) {
		t.Error("Move on despawned sprite should fail")
	}
	if s.Despawn(o) {
		t.Error("second Despawn should fail")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after despawn, expected 1", s.Len())
	}
}

func TestSceneReset(t *testing.T) {
	s := NewScene()
	first := s.Spawn(Sprite{Tag: TagPlayer})
	s.Reset()

	if s.Len() != 0 {
		t.Errorf("Len() = %d after Reset", s.Len())
	}
	if next := s.Spawn(Sprite{Tag: TagPlayer}); next == first {
		t.Error("IDs should not be reused after Reset")
	}
}

func TestViewportToCell(t *testing.T) {
	v := Viewport{Field: V2(400, 600), Screen: NewRect(10, 2, 40, 30)}

	tests := []struct {
		name     string
		p        Vec2
		col, row int
	}{
		{"top-left corner", V2(-200, 300), 10, 2},
		{"centre", V2(0, 0), 30, 17},
		{"just inside bottom-right", V2(199, -299), 49, 31},
		{"above the field", V2(0, 600), 30, -13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := v.ToCell(tc.p)
			if col != tc.col || row != tc.row {
				t.Errorf("ToCell(%+v) = (%d, %d), expected (%d, %d)", tc.p, col, row, tc.col, tc.row)
			}
		})
	}
}

func TestSceneDrawClipsToViewport(t *testing.T) {
	dst := NewScreen(20, 20)
	v := Viewport{Field: V2(400, 600), Screen: NewRect(0, 0, 20, 20)}

	s := NewScene()
	s.Spawn(Sprite{Tag: TagObstacle, Pos: V2(0, 700), Size: V2(50, 50), Color: ColorRed})
	s.Spawn(Sprite{Tag: TagPlayer, Pos: V2(0, 0), Size: V2(40, 60), Color: ColorCyan})
	s.Draw(dst, v)

	// Player spans x in [-20, 20] -> cols 9..10, y in [-30, 30] -> rows 9..10.
	for y := 9; y <= 10; y++ {
		for x := 9; x <= 10; x++ {
			if c := dst.GetCell(x, y); c.Rune != '█' || c.Color != ColorCyan {
				t.Errorf("expected player cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	// Obstacle is above the field and must not be drawn anywhere.
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if dst.GetCell(x, y).Color == ColorRed {
				t.Fatalf("off-field obstacle drawn at (%d, %d)", x, y)
			}
		}
	}
}
