// Package audio plays short sine cues for game events
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a tone of fixed pitch and length
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	EatCue  = Cue{Freq: 880, Duration: 50 * time.Millisecond}
	LoseCue = Cue{Freq: 220, Duration: 400 * time.Millisecond}
)

// Player is a no-op until Init succeeds
type Player struct {
	ready bool
}

func (p *Player) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.ready = true
	return nil
}

// Streamer builds the samples for c
func (c Cue) Streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(c.Duration), sine), nil
}

func (p *Player) Play(c Cue) error {
	if !p.ready {
		return nil
	}
	s, err := c.Streamer()
	if err != nil {
		return fmt.Errorf("cue %vHz: %w", c.Freq, err)
	}
	speaker.Play(s)
	return nil
}

func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
