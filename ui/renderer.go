package ui

import (
	"fmt"

	"snake3d/game"
	"snake3d/game/scene"
	"snake3d/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 200 // Scores shown in the history graph
	borderPadding = 10
	cameraFovy    = 45
	cameraHeight  = 220
	cameraBack    = 170
)

// Renderer draws the scene graph in 3D with raylib
type Renderer struct {
	camera       rl.Camera3D
	screenWidth  int32
	screenHeight int32
}

// NewRenderer must be called after rl.InitWindow
func NewRenderer() *Renderer {
	r := &Renderer{
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, cameraHeight, cameraBack),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       cameraFovy,
			Projection: rl.CameraPerspective,
		},
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(r.camera)
	r.drawArena(float32(g.ArenaHalfExtent()))

	head := g.GetSnake().Body[0]
	g.Scene.Traverse(func(m *scene.Mesh) {
		color := toRaylib(m.Color())
		if m == head {
			color = brighten(color)
		}
		pos := rl.NewVector3(float32(m.Position.X), float32(m.Position.Y), float32(m.Position.Z))
		size := float32(m.Size)
		rl.DrawCube(pos, size, size, size, color)
		rl.DrawCubeWires(pos, size, size, size, rl.DarkGreen)
	})
	rl.EndMode3D()

	fontSize := r.screenHeight / 30
	rl.DrawText(g.ScoreText(), borderPadding, borderPadding, fontSize, rl.White)
	rl.DrawText(g.HighScoreText(), borderPadding, borderPadding+fontSize+5, fontSize, rl.Green)

	r.drawScoreGraph(g, fontSize)

	if notice := g.Notice(); notice != "" {
		noticeSize := fontSize * 2
		width := rl.MeasureText(notice, noticeSize)
		rl.DrawText(notice, (r.screenWidth-width)/2, r.screenHeight/3, noticeSize, rl.Red)
	}

	rl.EndDrawing()
}

// drawScoreGraph plots the final score of recent games in the bottom left corner
func (r *Renderer) drawScoreGraph(g *game.Game, fontSize int32) {
	graphWidth := r.screenWidth / 4
	graphHeight := r.screenHeight / 6
	graphX := int32(borderPadding)
	graphY := r.screenHeight - graphHeight - fontSize - borderPadding

	history := g.ScoreHistory()
	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.White)
	rl.DrawText(fmt.Sprintf("Games: %d", len(history)), graphX, graphY+graphHeight+5, fontSize, rl.White)
	if len(history) < 2 {
		return
	}

	scores := g.RecentScores(maxScores)
	maxScore, total := 1, 0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
		total += score
	}
	scaleY := func(score float32) int32 {
		return graphY + graphHeight - int32(float32(graphHeight)*score/float32(maxScore))
	}

	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(graphWidth)*float32(j-1)/float32(maxScores))
		x2 := graphX + int32(float32(graphWidth)*float32(j)/float32(maxScores))
		rl.DrawLine(x1, scaleY(float32(scores[j-1])), x2, scaleY(float32(scores[j])), rl.Green)
	}

	// Dashed average line
	avgY := scaleY(float32(total) / float32(len(scores)))
	for x := graphX; x < graphX+graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Yellow)
	}
}

func (r *Renderer) drawArena(half float32) {
	rl.DrawPlane(rl.NewVector3(0, -2, 0), rl.NewVector2(half*2, half*2), toRaylib(types.BorderColor))
	rl.DrawCubeWires(rl.NewVector3(0, 0, 0), half*2, 1, half*2, rl.Gray)
}

func toRaylib(c types.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.Color{R: r, G: g, B: b, A: 255}
}

func brighten(c rl.Color) rl.Color {
	scale := func(v uint8) uint8 {
		f := float32(v) * 1.3
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return rl.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
