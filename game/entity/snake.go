package entity

import (
	"snake3d/game/scene"
	"snake3d/game/types"
)

type Snake struct {
	Body    []*scene.Mesh // Body[0] is the head
	factory *Factory
	step    float64
}

// NewSnake places a head and one trailing segment at start
func NewSnake(factory *Factory, start types.Vec3, step float64, color types.Color) *Snake {
	s := &Snake{
		Body:    make([]*scene.Mesh, 0, 16),
		factory: factory,
		step:    step,
	}
	for i := 0; i < 2; i++ {
		m := factory.CreateSegment(color)
		m.SetPosition(start.X, start.Y, start.Z)
		s.Body = append(s.Body, m)
	}
	return s
}

func (s *Snake) GetHead() types.Vec3 {
	return s.Body[0].Position
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// BodyLen counts the segments trailing the head
func (s *Snake) BodyLen() int {
	return len(s.Body) - 1
}

func (s *Snake) Positions() []types.Vec3 {
	out := make([]types.Vec3, len(s.Body))
	for i, m := range s.Body {
		out[i] = m.Position
	}
	return out
}

// Tick advances the chain one step. Each trailing segment takes the position
// its predecessor held before this tick, then the head moves along dir.
func (s *Snake) Tick(dir types.Direction) {
	if dir == types.None {
		return
	}
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i].Position = s.Body[i-1].Position
	}

	head := s.Body[0]
	switch dir {
	case types.Right:
		head.TranslateX(s.step)
	case types.Left:
		head.TranslateX(-s.step)
	case types.Up:
		head.TranslateZ(-s.step)
	case types.Down:
		head.TranslateZ(s.step)
	}
}

// Grow appends one segment at the current tail position
func (s *Snake) Grow(color types.Color) {
	tail := s.Body[len(s.Body)-1].Position
	m := s.factory.CreateSegment(color)
	m.SetPosition(tail.X, tail.Y, tail.Z)
	s.Body = append(s.Body, m)
}

// Dispose removes every segment from the scene and empties the chain
func (s *Snake) Dispose() {
	sc := s.factory.Scene()
	for _, m := range s.Body {
		sc.Remove(m)
	}
	s.Body = s.Body[:0]
}
