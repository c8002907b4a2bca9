package entity

import (
	"snake3d/game/scene"
	"snake3d/game/types"
)

// Factory builds cube segments and attaches them to a scene
type Factory struct {
	scene *scene.Scene
	size  float64
}

func NewFactory(s *scene.Scene, size float64) *Factory {
	return &Factory{
		scene: s,
		size:  size,
	}
}

// CreateSegment returns a new cube at the world origin, already in the scene
func (f *Factory) CreateSegment(color types.Color) *scene.Mesh {
	m := scene.NewBox(f.size, color)
	f.scene.Add(m)
	return m
}

// CreatePersistentSegment is CreateSegment for meshes reused across sessions
func (f *Factory) CreatePersistentSegment(color types.Color) *scene.Mesh {
	m := f.CreateSegment(color)
	m.Persistent = true
	return m
}

func (f *Factory) Scene() *scene.Scene {
	return f.scene
}
