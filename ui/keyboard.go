package ui

import (
	"snake3d/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var arrowKeys = []struct {
	raylib int32
	key    types.Key
}{
	{rl.KeyLeft, types.KeyLeft},
	{rl.KeyUp, types.KeyUp},
	{rl.KeyRight, types.KeyRight},
	{rl.KeyDown, types.KeyDown},
}

// PollKeys returns the arrow keys pressed since the last frame
func PollKeys() []types.Key {
	var keys []types.Key
	for _, k := range arrowKeys {
		if rl.IsKeyPressed(k.raylib) {
			keys = append(keys, k.key)
		}
	}
	return keys
}
