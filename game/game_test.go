package game

import (
	"strings"
	"testing"

	"snake3d/game/types"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 12345
	g, err := NewGame(cfg, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// placeHead teleports the head without touching the rest of the chain
func placeHead(g *Game, p types.Vec3) {
	g.snake.Body[0].SetPosition(p.X, p.Y, p.Z)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []func(*Config){
		func(c *Config) { c.Step = 0 },
		func(c *Config) { c.SegmentSize = -1 },
		func(c *Config) { c.BonusSegments = -1 },
		func(c *Config) { c.SpawnExtent = 500 },
		func(c *Config) { c.MaxSpawnAttempts = 0 },
		func(c *Config) { c.SelfCollisionSkip = -1 },
		func(c *Config) { c.NoticeFrames = -1 },
	}
	for i, mutate := range bad {
		c := DefaultConfig()
		mutate(&c)
		if c.Validate() == nil {
			t.Errorf("case %d: expected validation error", i)
		}
		if _, err := NewGame(c, nil); err == nil {
			t.Errorf("case %d: NewGame should reject config", i)
		}
	}
}

func TestNoMovementWithoutInput(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 30; i++ {
		g.Update()
	}
	if g.GetSnake().GetHead() != types.StartPosition {
		t.Errorf("head at %v, want %v", g.GetSnake().GetHead(), types.StartPosition)
	}
	if !g.GetFood().Active() {
		t.Error("food should be spawned on the first frame")
	}
}

func TestRightMovesOneStep(t *testing.T) {
	g := newTestGame(t)
	g.HandleKey(types.KeyRight)
	g.Update()
	head := g.GetSnake().GetHead()
	want := types.StartPosition.Add(types.Vec3{X: types.Step})
	if head != want {
		t.Errorf("head at %v, want %v", head, want)
	}
}

func TestEatingFood(t *testing.T) {
	g := newTestGame(t)
	g.Update()
	food := g.GetFood().Position()
	before := g.GetSnake().Len()

	placeHead(g, food)
	g.Update()

	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if g.ScoreText() != "Score: 1" {
		t.Errorf("ScoreText() = %q", g.ScoreText())
	}
	if got, want := g.GetSnake().Len(), before+1+g.cfg.BonusSegments; got != want {
		t.Errorf("length %d, want %d", got, want)
	}
	if g.GetFood().Active() {
		t.Error("eaten food should stay inactive until the next frame")
	}

	ev := g.Events()
	if len(ev) != 1 || ev[0].Type != EventEat || ev[0].Score != 1 {
		t.Errorf("events = %+v", ev)
	}
	if len(g.Events()) != 0 {
		t.Error("Events should drain the queue")
	}

	g.Update()
	if !g.GetFood().Active() {
		t.Fatal("food should respawn on the following frame")
	}
	if g.GetFood().Position() == food {
		t.Error("food should have moved after being eaten")
	}
	if g.Score() != 1 {
		t.Errorf("respawn frame changed the score to %d", g.Score())
	}
}

func TestGrowthFollowsBonusSetting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.BonusSegments = 0
	g, err := NewGame(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.Update()
	before := g.GetSnake().Len()
	placeHead(g, g.GetFood().Position())
	g.Update()
	if g.GetSnake().Len() != before+1 {
		t.Errorf("length %d, want %d", g.GetSnake().Len(), before+1)
	}
}

func TestWallCollisionResets(t *testing.T) {
	g := newTestGame(t)
	g.Update()
	placeHead(g, g.GetFood().Position())
	g.Update()
	g.Events()
	if g.Score() != 1 {
		t.Fatalf("setup: score %d", g.Score())
	}

	g.GetFood().Deactivate()
	placeHead(g, types.Vec3{X: 101, Y: 1, Z: 1})
	g.Update()

	if g.Score() != 0 || g.HighScore() != 1 {
		t.Errorf("score=%d high=%d, want 0 and 1", g.Score(), g.HighScore())
	}
	if g.GetSnake().BodyLen() != 1 {
		t.Errorf("BodyLen() = %d, want 1", g.GetSnake().BodyLen())
	}
	if g.GetSnake().GetHead() != types.StartPosition {
		t.Errorf("head at %v, want start", g.GetSnake().GetHead())
	}
	if g.Input().Direction() != types.Right {
		t.Errorf("heading %s after reset, want right", g.Input().Direction())
	}
	if !strings.Contains(g.Notice(), "Your Score is 1") {
		t.Errorf("Notice() = %q", g.Notice())
	}

	ev := g.Events()
	if len(ev) != 1 || ev[0].Type != EventLose || ev[0].Cause != WallCollision || ev[0].Score != 1 {
		t.Errorf("events = %+v", ev)
	}

	// Old snake meshes are gone: new head, one body segment and the food
	if g.Scene.Len() != 3 {
		t.Errorf("scene has %d meshes, want 3", g.Scene.Len())
	}
}

func TestSelfCollisionResets(t *testing.T) {
	g := newTestGame(t)

	// Grow one segment per step so the body unrolls along the x axis
	g.HandleKey(types.KeyRight)
	for i := 0; i < 28; i++ {
		g.GetSnake().Grow(types.SnakeColor)
		g.Update()
	}
	if lost := lossCauses(g.Events()); len(lost) != 0 {
		t.Fatalf("unexpected loss while unrolling: %v", lost)
	}

	// Loop back down onto the body
	turns := []struct {
		key   types.Key
		steps int
	}{
		{types.KeyDown, 5},
		{types.KeyLeft, 5},
		{types.KeyUp, 5},
	}
	var lost []LossCause
	for _, turn := range turns {
		g.HandleKey(turn.key)
		for i := 0; i < turn.steps; i++ {
			g.Update()
			lost = append(lost, lossCauses(g.Events())...)
		}
	}
	if len(lost) != 1 || lost[0] != SelfCollision {
		t.Fatalf("losses = %v, want one self collision", lost)
	}
	if g.HighScore() != g.ScoreHistory()[0] {
		t.Errorf("high score %d, history %v", g.HighScore(), g.ScoreHistory())
	}
}

func lossCauses(events []Event) []LossCause {
	var causes []LossCause
	for _, ev := range events {
		if ev.Type == EventLose {
			causes = append(causes, ev.Cause)
		}
	}
	return causes
}

func TestReverseRejected(t *testing.T) {
	g := newTestGame(t)
	g.HandleKey(types.KeyDown)
	g.Update()
	g.HandleKey(types.KeyUp)
	g.Update()
	if g.Input().Direction() != types.Down {
		t.Errorf("heading %s, want down", g.Input().Direction())
	}
	want := types.StartPosition.Add(types.Vec3{Z: 2 * types.Step})
	if g.GetSnake().GetHead() != want {
		t.Errorf("head at %v, want %v", g.GetSnake().GetHead(), want)
	}
}

func TestNoticeExpires(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.NoticeFrames = 3
	g, err := NewGame(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.GetFood().Deactivate()
	placeHead(g, types.Vec3{X: -150, Y: 1, Z: 0})
	g.Update()
	if g.Notice() == "" {
		t.Fatal("expected a loss notice")
	}
	// The reset heading is right; keep the snake inside the arena
	for i := 0; i < 2; i++ {
		g.Update()
	}
	if g.Notice() == "" {
		t.Fatalf("notice cleared before %d frames", cfg.NoticeFrames)
	}
	g.Update()
	if g.Notice() != "" {
		t.Errorf("notice still shown: %q", g.Notice())
	}
}
