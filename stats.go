package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// GameStats collects the finished games of one process run
type GameStats struct {
	SessionID string
	Games     []GameRecord
	mutex     sync.RWMutex
}

// GameRecord is one finished game
type GameRecord struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Cause     string    `json:"cause"`
}

// StatsSummary aggregates every recorded game
type StatsSummary struct {
	GamesCount      int     `json:"gamesCount"`
	MaxScore        int     `json:"maxScore"`
	AverageScore    float64 `json:"averageScore"`
	AverageDuration float64 `json:"averageDuration"` // seconds
}

// statsFile is the JSON layout written by SaveToFile
type statsFile struct {
	SessionID string       `json:"sessionId"`
	Summary   StatsSummary `json:"summary"`
	Games     []GameRecord `json:"games"`
}

func NewGameStats(sessionID string) *GameStats {
	return &GameStats{
		SessionID: sessionID,
		Games:     make([]GameRecord, 0),
	}
}

func (s *GameStats) AddGame(score int, cause string, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.Games = append(s.Games, GameRecord{
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
		Cause:     cause,
	})
}

func (s *GameStats) Summary() StatsSummary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.summary()
}

func (s *GameStats) summary() StatsSummary {
	sum := StatsSummary{GamesCount: len(s.Games)}
	if len(s.Games) == 0 {
		return sum
	}

	total := 0
	var duration float64
	for _, g := range s.Games {
		total += g.Score
		duration += g.EndTime.Sub(g.StartTime).Seconds()
		if g.Score > sum.MaxScore {
			sum.MaxScore = g.Score
		}
	}
	sum.AverageScore = float64(total) / float64(len(s.Games))
	sum.AverageDuration = duration / float64(len(s.Games))
	return sum
}

// SaveToFile writes the summary and every game as JSON, creating parent
// directories as needed
func (s *GameStats) SaveToFile(filename string) error {
	s.mutex.RLock()
	out := statsFile{
		SessionID: s.SessionID,
		Summary:   s.summary(),
		Games:     append(make([]GameRecord, 0, len(s.Games)), s.Games...),
	}
	s.mutex.RUnlock()

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}
