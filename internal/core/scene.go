package core

import "math"

// Tag marks what kind of game object a sprite represents.
type Tag int

const (
	TagPlayer Tag = iota
	TagObstacle
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// EntityID identifies a sprite within a Scene. Zero is never issued.
type EntityID uint64

// Sprite is a solid rectangle positioned in world units.
// Pos is the centre of the rectangle.
type Sprite struct {
	Tag   Tag
	Pos   Vec2
	Size  Vec2
	Color Color
}

// Scene is the set of visual rectangles the simulation has created.
// The simulation only writes to it; nothing in the game reads positions back.
type Scene struct {
	next    EntityID
	order   []EntityID
	sprites map[EntityID]Sprite
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{sprites: make(map[EntityID]Sprite)}
}

// Spawn adds a sprite and returns its ID.
func (s *Scene) Spawn(sp Sprite) EntityID {
	s.next++
	id := s.next
	s.sprites[id] = sp
	s.order = append(s.order, id)
	return id
}

// Move sets the centre of an existing sprite. Returns false if the ID is unknown.
func (s *Scene) Move(id EntityID, pos Vec2) bool {
	sp, ok := s.sprites[id]
	if !ok {
		return false
	}
	sp.Pos = pos
	s.sprites[id] = sp
	return true
}

// Despawn removes a sprite. Returns false if the ID is unknown.
func (s *Scene) Despawn(id EntityID) bool {
	if _, ok := s.sprites[id]; !ok {
		return false
	}
	delete(s.sprites, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Sprite returns the sprite with the given ID.
func (s *Scene) Sprite(id EntityID) (Sprite, bool) {
	sp, ok := s.sprites[id]
	return sp, ok
}

// Len returns the number of live sprites.
func (s *Scene) Len() int {
	return len(s.order)
}

// Count returns the number of live sprites carrying the given tag.
func (s *Scene) Count(tag Tag) int {
	n := 0
	for _, id := range s.order {
		if s.sprites[id].Tag == tag {
			n++
		}
	}
	return n
}

// Reset removes every sprite. IDs keep increasing across resets.
func (s *Scene) Reset() {
	s.order = s.order[:0]
	clear(s.sprites)
}

// Viewport maps a world-space field, centred on the origin, onto a block of screen cells.
type Viewport struct {
	Field  Vec2 // World width and height
	Screen Rect // Target cells
}

// ToCell converts a world position into a (column, row) inside the viewport.
// Positions outside the field map to cells outside Screen.
func (v Viewport) ToCell(p Vec2) (int, int) {
	fx := (p.X + v.Field.X/2) / v.Field.X
	fy := (v.Field.Y/2 - p.Y) / v.Field.Y
	col := v.Screen.X + int(math.Floor(fx*float64(v.Screen.W)))
	row := v.Screen.Y + int(math.Floor(fy*float64(v.Screen.H)))
	return col, row
}

// cellRect returns the cells covered by a sprite, at least one cell in each direction.
func (v Viewport) cellRect(sp Sprite) Rect {
	half := V2(sp.Size.X/2, sp.Size.Y/2)
	x0, y0 := v.ToCell(V2(sp.Pos.X-half.X, sp.Pos.Y+half.Y))
	x1, y1 := v.ToCell(V2(sp.Pos.X+half.X, sp.Pos.Y-half.Y))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// Draw paints every sprite in spawn order, clipped to the viewport.
func (s *Scene) Draw(dst *Screen, v Viewport) {
	for _, id := range s.order {
		sp := s.sprites[id]
		r := v.cellRect(sp)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if v.Screen.Contains(x, y) {
					dst.SetCell(x, y, '█', sp.Color)
				}
			}
		}
	}
}
