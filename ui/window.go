package ui

import (
	"snake3d/game"
	"snake3d/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib frontend. Frame pacing comes from rl.SetTargetFPS.
type Window struct {
	renderer *Renderer
}

func OpenWindow(width, height, fps int32, title string) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, title)
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(fps)
	return &Window{renderer: NewRenderer()}
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) PollKeys() []types.Key {
	return PollKeys()
}

func (w *Window) Draw(g *game.Game) {
	w.renderer.Draw(g)
}

func (w *Window) Close() {
	rl.CloseWindow()
}
