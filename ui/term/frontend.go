// Package term draws the arena top-down in a terminal
package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"snake3d/game"
	"snake3d/game/scene"
	"snake3d/game/types"
)

const hudRows = 2

type Frontend struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	quit   bool
}

// NewFrontend takes an uninitialised screen
func NewFrontend(screen tcell.Screen) (*Frontend, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	f := &Frontend{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go f.poll()
	return f, nil
}

// poll forwards screen events until the screen is finalised or Close is called
func (f *Frontend) poll() {
	defer close(f.events)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case f.events <- ev:
		case <-f.done:
			return
		}
	}
}

// PollKeys drains pending events and returns the arrow keys among them
func (f *Frontend) PollKeys() []types.Key {
	var keys []types.Key
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				f.quit = true
				return keys
			}
			if k, ok := f.handleEvent(ev); ok {
				keys = append(keys, k)
			}
		default:
			return keys
		}
	}
}

func (f *Frontend) handleEvent(ev tcell.Event) (types.Key, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			f.quit = true
		case tcell.KeyLeft:
			return types.KeyLeft, true
		case tcell.KeyUp:
			return types.KeyUp, true
		case tcell.KeyRight:
			return types.KeyRight, true
		case tcell.KeyDown:
			return types.KeyDown, true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				f.quit = true
			}
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return 0, false
}

func (f *Frontend) ShouldClose() bool {
	return f.quit
}

func (f *Frontend) Draw(g *game.Game) {
	f.screen.Clear()
	w, h := f.screen.Size()
	half := g.ArenaHalfExtent()

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		f.screen.SetContent(x, hudRows, '─', nil, border)
	}

	g.Scene.Traverse(func(m *scene.Mesh) {
		col, row, ok := Project(m.Position, half, w, h-hudRows-1)
		if !ok {
			return
		}
		r, gr, b := m.Color().RGB()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(gr), int32(b)))
		f.screen.SetContent(col, row+hudRows+1, '█', nil, style)
	})

	f.drawText(0, 0, g.ScoreText()+"  "+g.HighScoreText(), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if notice := g.Notice(); notice != "" {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		f.drawText(0, 1, strings.Join(strings.Fields(notice), " "), style)
	}
	f.screen.Show()
}

func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (f *Frontend) Close() {
	select {
	case <-f.done:
		return
	default:
	}
	close(f.done)
	f.screen.Fini()
}

// Project maps a world position on the x/z plane to a cell in a w by h
// field covering [-half, half] on both axes.
func Project(p types.Vec3, half float64, w, h int) (col, row int, ok bool) {
	if w <= 0 || h <= 0 || p.X < -half || p.X > half || p.Z < -half || p.Z > half {
		return 0, 0, false
	}
	col = int((p.X + half) / (2 * half) * float64(w-1))
	row = int((p.Z + half) / (2 * half) * float64(h-1))
	return col, row, true
}
