package manager

import (
	"fmt"

	"github.com/google/uuid"
)

type StateManager struct {
	sessionID    string
	score        int
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		sessionID:    uuid.New().String(),
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) AddPoint() {
	sm.score++
}

// EndSession records the finished game, raises the high score if beaten and
// zeroes the score. It returns the final score.
func (sm *StateManager) EndSession() int {
	final := sm.score
	if final > sm.highScore {
		sm.highScore = final
	}
	sm.scoreHistory = append(sm.scoreHistory, final)
	sm.score = 0
	return final
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}

// RecentScores returns up to n of the latest final scores, oldest first
func (sm *StateManager) RecentScores(n int) []int {
	if n <= 0 {
		return nil
	}
	start := len(sm.scoreHistory) - n
	if start < 0 {
		start = 0
	}
	out := make([]int, len(sm.scoreHistory)-start)
	copy(out, sm.scoreHistory[start:])
	return out
}

func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

func (sm *StateManager) ScoreText() string {
	return fmt.Sprintf("Score: %d", sm.score)
}

func (sm *StateManager) HighScoreText() string {
	return fmt.Sprintf("HighScore: %d", sm.highScore)
}
