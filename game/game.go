package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"snake3d/game/entity"
	"snake3d/game/manager"
	"snake3d/game/scene"
	"snake3d/game/types"
)

// EventType identifies something the frame loop reports to frontends
type EventType int

const (
	EventEat EventType = iota + 1
	EventLose
)

// LossCause tells why a session ended
type LossCause int

const (
	NoCollision LossCause = iota
	WallCollision
	SelfCollision
)

func (c LossCause) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

type Event struct {
	Type  EventType
	Score int       // score after eating, or final score on loss
	Cause LossCause // set for EventLose
	Start time.Time // session start, set for EventLose
	End   time.Time
}

type Game struct {
	cfg    Config
	logger *log.Logger

	Scene        *scene.Scene
	factory      *entity.Factory
	snake        *entity.Snake
	input        *manager.InputController
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	StartTime    time.Time
	notice       string
	noticeFrames int
	events       []Event
}

func NewGame(cfg Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	sc := scene.New()
	factory := entity.NewFactory(sc, cfg.SegmentSize)
	collisionMgr := manager.NewCollisionManager(cfg.ArenaHalfExtent, cfg.SegmentSize/2, cfg.SelfCollisionSkip)
	foodMgr := manager.NewFoodManager(factory, collisionMgr, rng, logger)
	foodMgr.SetLimits(cfg.SpawnExtent, cfg.MaxSpawnAttempts, cfg.BlinkFrames)

	g := &Game{
		cfg:          cfg,
		logger:       logger,
		Scene:        sc,
		factory:      factory,
		input:        manager.NewInputController(),
		collisionMgr: collisionMgr,
		foodMgr:      foodMgr,
		stateMgr:     manager.NewStateManager(),
		StartTime:    time.Now(),
	}
	g.snake = entity.NewSnake(factory, types.StartPosition, cfg.Step, types.SnakeColor)
	logger.Printf("session %s started, seed %d", g.stateMgr.SessionID(), seed)
	return g, nil
}

// HandleKey latches an arrow key for the next Update
func (g *Game) HandleKey(k types.Key) {
	if g.input.HandleKey(k) {
		g.logger.Printf("heading %s", g.input.Direction())
	}
}

// Update runs one frame. Food eaten in a frame stays inactive until the next
// one, where it is respawned before the snake moves.
func (g *Game) Update() {
	g.foodMgr.SpawnIfAbsent(g.snake.Positions())
	g.foodMgr.Blink()

	g.snake.Tick(g.input.Direction())

	head := g.snake.GetHead()
	if g.foodMgr.CheckEaten(head) {
		g.stateMgr.AddPoint()
		for i := 0; i <= g.cfg.BonusSegments; i++ {
			g.snake.Grow(types.SnakeColor)
		}
		g.events = append(g.events, Event{Type: EventEat, Score: g.stateMgr.Score()})
	}

	if g.noticeFrames > 0 {
		g.noticeFrames--
		if g.noticeFrames == 0 {
			g.notice = ""
		}
	}

	if cause := g.checkCollision(); cause != NoCollision {
		g.lose(cause)
	}
}

func (g *Game) checkCollision() LossCause {
	if g.collisionMgr.IsSelfCollision(g.snake.Positions()) {
		return SelfCollision
	}
	if g.collisionMgr.IsWallCollision(g.snake.GetHead()) {
		return WallCollision
	}
	return NoCollision
}

func (g *Game) lose(cause LossCause) {
	end := time.Now()
	final := g.reset()
	g.notice = fmt.Sprintf("You Lose \n\nYour Score is %d", final)
	g.noticeFrames = g.cfg.NoticeFrames
	g.events = append(g.events, Event{
		Type:  EventLose,
		Score: final,
		Cause: cause,
		Start: g.StartTime,
		End:   end,
	})
	g.StartTime = end
	g.logger.Printf("lost to %s collision with score %d, high score %d", cause, final, g.stateMgr.HighScore())
}

// reset restores a fresh session and returns the score of the one that ended
func (g *Game) reset() int {
	g.input.Reset(types.Right)
	g.foodMgr.Deactivate()
	g.snake.Dispose()
	final := g.stateMgr.EndSession()
	g.snake = entity.NewSnake(g.factory, types.StartPosition, g.cfg.Step, types.SnakeColor)
	return final
}

// Events returns and clears the events queued since the last call
func (g *Game) Events() []Event {
	ev := g.events
	g.events = nil
	return ev
}

// Notice is the loss message while it is still on screen
func (g *Game) Notice() string {
	return g.notice
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *manager.FoodManager {
	return g.foodMgr
}

func (g *Game) Input() *manager.InputController {
	return g.input
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) HighScore() int {
	return g.stateMgr.HighScore()
}

func (g *Game) ScoreText() string {
	return g.stateMgr.ScoreText()
}

func (g *Game) HighScoreText() string {
	return g.stateMgr.HighScoreText()
}

func (g *Game) SessionID() string {
	return g.stateMgr.SessionID()
}

func (g *Game) ArenaHalfExtent() float64 {
	return g.cfg.ArenaHalfExtent
}

func (g *Game) ScoreHistory() []int {
	return g.stateMgr.GetScoreHistory()
}

// RecentScores returns up to n of the latest final scores, oldest first
func (g *Game) RecentScores(n int) []int {
	return g.stateMgr.RecentScores(n)
}
