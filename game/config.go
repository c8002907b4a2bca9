package game

import (
	"errors"
	"fmt"

	"snake3d/game/types"
)

// Config tunes the arena and growth rules
type Config struct {
	ArenaHalfExtent   float64
	SpawnExtent       int
	Step              float64
	SegmentSize       float64
	BonusSegments     int // extra segments grown per food on top of the first
	BlinkFrames       int
	SelfCollisionSkip int
	MaxSpawnAttempts  int
	NoticeFrames      int
	Seed              uint64 // 0 means seed from the clock
}

func DefaultConfig() Config {
	return Config{
		ArenaHalfExtent:   types.ArenaHalfExtent,
		SpawnExtent:       types.SpawnExtent,
		Step:              types.Step,
		SegmentSize:       types.SegmentSize,
		BonusSegments:     3,
		BlinkFrames:       types.BlinkFrames,
		SelfCollisionSkip: types.SelfCollisionSkip,
		MaxSpawnAttempts:  types.MaxSpawnAttempts,
		NoticeFrames:      types.NoticeFrames,
	}
}

func (c Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", c.Step)
	}
	if c.SegmentSize <= 0 {
		return fmt.Errorf("segment size must be positive, got %v", c.SegmentSize)
	}
	if c.ArenaHalfExtent <= 0 {
		return errors.New("arena half extent must be positive")
	}
	if c.SpawnExtent < 0 || float64(c.SpawnExtent) > c.ArenaHalfExtent {
		return fmt.Errorf("spawn extent %d outside arena", c.SpawnExtent)
	}
	if c.BonusSegments < 0 {
		return fmt.Errorf("bonus segments must not be negative, got %d", c.BonusSegments)
	}
	if c.BlinkFrames <= 0 || c.MaxSpawnAttempts <= 0 {
		return errors.New("blink frames and spawn attempts must be positive")
	}
	if c.SelfCollisionSkip < 0 {
		return fmt.Errorf("self collision skip must not be negative, got %d", c.SelfCollisionSkip)
	}
	if c.NoticeFrames < 0 {
		return fmt.Errorf("notice frames must not be negative, got %d", c.NoticeFrames)
	}
	return nil
}
