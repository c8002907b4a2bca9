package manager

import (
	"io"
	"log"

	"golang.org/x/exp/rand"

	"snake3d/game/entity"
	"snake3d/game/scene"
	"snake3d/game/types"
)

type FoodManager struct {
	factory      *entity.Factory
	collisionMgr *CollisionManager
	rng          *rand.Rand
	logger       *log.Logger

	food        *scene.Mesh
	active      bool
	blinkTimer  int
	blinkFrames int
	extent      int
	attempts    int
	colors      [2]types.Color
}

func NewFoodManager(factory *entity.Factory, collisionMgr *CollisionManager, rng *rand.Rand, logger *log.Logger) *FoodManager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FoodManager{
		factory:      factory,
		collisionMgr: collisionMgr,
		rng:          rng,
		logger:       logger,
		blinkFrames:  types.BlinkFrames,
		extent:       types.SpawnExtent,
		attempts:     types.MaxSpawnAttempts,
		colors:       [2]types.Color{types.FoodColorA, types.FoodColorB},
	}
}

// SetLimits overrides the spawn extent, retry count and blink period
func (fm *FoodManager) SetLimits(extent, attempts, blinkFrames int) {
	fm.extent = extent
	fm.attempts = attempts
	fm.blinkFrames = blinkFrames
}

// SpawnIfAbsent places the food when it is not active. occupied[0] is the
// head; its height is used for the food.
func (fm *FoodManager) SpawnIfAbsent(occupied []types.Vec3) {
	if fm.active {
		return
	}
	if fm.food == nil {
		fm.food = fm.factory.CreatePersistentSegment(fm.colors[0])
	}

	var y float64
	if len(occupied) > 0 {
		y = occupied[0].Y
	}

	var pos types.Vec3
	for i := 0; i < fm.attempts; i++ {
		pos = fm.GenerateFood(y)
		if fm.collisionMgr.ValidateSpawnPosition(pos, occupied) {
			break
		}
		if i == fm.attempts-1 {
			fm.logger.Printf("food spawned on snake at (%.0f, %.0f) after %d attempts", pos.X, pos.Z, fm.attempts)
		}
	}

	fm.food.SetPosition(pos.X, pos.Y, pos.Z)
	fm.blinkTimer = 0
	fm.active = true
}

// GenerateFood draws a grid-aligned position inside the spawn extent
func (fm *FoodManager) GenerateFood(y float64) types.Vec3 {
	span := 2*fm.extent + 1
	return types.Vec3{
		X: float64(fm.rng.Intn(span) - fm.extent),
		Y: y,
		Z: float64(fm.rng.Intn(span) - fm.extent),
	}
}

// Blink swaps the food color every blinkFrames frames while food is active
func (fm *FoodManager) Blink() {
	if !fm.active {
		return
	}
	fm.blinkTimer++
	if fm.blinkTimer < fm.blinkFrames {
		return
	}
	fm.blinkTimer = 0
	if fm.food.Color() == fm.colors[0] {
		fm.food.SetColor(fm.colors[1])
	} else {
		fm.food.SetColor(fm.colors[0])
	}
}

// CheckEaten deactivates the food when head reaches it
func (fm *FoodManager) CheckEaten(head types.Vec3) bool {
	if !fm.active {
		return false
	}
	if !fm.collisionMgr.IsFoodCollision(head, fm.food.Position) {
		return false
	}
	fm.active = false
	return true
}

func (fm *FoodManager) Active() bool {
	return fm.active
}

func (fm *FoodManager) Deactivate() {
	fm.active = false
}

func (fm *FoodManager) Position() types.Vec3 {
	if fm.food == nil {
		return types.Vec3{}
	}
	return fm.food.Position
}

func (fm *FoodManager) Color() types.Color {
	if fm.food == nil {
		return fm.colors[0]
	}
	return fm.food.Color()
}
