// Package scene is a minimal scene graph: meshes with a position and a solid
// color, grouped under a Scene that frontends traverse once per frame.
package scene

import (
	"snake3d/game/types"
)

// Mesh is a cube-shaped renderable node
type Mesh struct {
	Position   types.Vec3
	Size       float64
	Persistent bool // reused across sessions, never disposed

	color  types.Color
	parent *Scene
}

func NewBox(size float64, color types.Color) *Mesh {
	return &Mesh{Size: size, color: color}
}

func (m *Mesh) SetPosition(x, y, z float64) {
	m.Position = types.Vec3{X: x, Y: y, Z: z}
}

// TranslateX moves the mesh along its local X axis. Meshes carry no rotation,
// so local and world axes coincide.
func (m *Mesh) TranslateX(distance float64) {
	m.Position.X += distance
}

func (m *Mesh) TranslateZ(distance float64) {
	m.Position.Z += distance
}

func (m *Mesh) Color() types.Color {
	return m.color
}

func (m *Mesh) SetColor(c types.Color) {
	m.color = c
}

// InScene reports whether the mesh is currently attached to a scene
func (m *Mesh) InScene() bool {
	return m.parent != nil
}

// Scene holds meshes in insertion order
type Scene struct {
	children []*Mesh
}

func New() *Scene {
	return &Scene{children: make([]*Mesh, 0)}
}

// Add attaches m, detaching it from any previous scene first
func (s *Scene) Add(m *Mesh) {
	if m.parent == s {
		return
	}
	if m.parent != nil {
		m.parent.Remove(m)
	}
	m.parent = s
	s.children = append(s.children, m)
}

func (s *Scene) Remove(m *Mesh) {
	for i, c := range s.children {
		if c == m {
			s.children = append(s.children[:i], s.children[i+1:]...)
			m.parent = nil
			return
		}
	}
}

// Traverse calls fn for every mesh in insertion order
func (s *Scene) Traverse(fn func(m *Mesh)) {
	for _, c := range s.children {
		fn(c)
	}
}

func (s *Scene) Len() int {
	return len(s.children)
}
