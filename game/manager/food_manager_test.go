package manager

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"snake3d/game/entity"
	"snake3d/game/scene"
	"snake3d/game/types"
)

func newTestFoodManager(seed uint64) (*FoodManager, *scene.Scene) {
	sc := scene.New()
	f := entity.NewFactory(sc, types.SegmentSize)
	fm := NewFoodManager(f, newTestCollisionManager(), rand.New(rand.NewSource(seed)), nil)
	return fm, sc
}

func TestSpawnIfAbsent(t *testing.T) {
	fm, sc := newTestFoodManager(1)
	head := []types.Vec3{types.StartPosition}

	fm.SpawnIfAbsent(head)
	if !fm.Active() {
		t.Fatal("food should be active after spawn")
	}
	if sc.Len() != 1 {
		t.Fatalf("scene has %d meshes, want 1", sc.Len())
	}
	pos := fm.Position()
	if pos.Y != types.StartPosition.Y {
		t.Errorf("food height %v, want head height", pos.Y)
	}

	fm.SpawnIfAbsent(head)
	if fm.Position() != pos {
		t.Error("active food should not move")
	}

	fm.Deactivate()
	fm.SpawnIfAbsent(head)
	if sc.Len() != 1 {
		t.Error("respawn should reuse the same mesh")
	}
}

func TestSpawnStaysInGridAndBounds(t *testing.T) {
	fm, _ := newTestFoodManager(7)
	for i := 0; i < 500; i++ {
		fm.Deactivate()
		fm.SpawnIfAbsent([]types.Vec3{types.StartPosition})
		p := fm.Position()
		if math.Abs(p.X) > types.SpawnExtent || math.Abs(p.Z) > types.SpawnExtent {
			t.Fatalf("food out of bounds at %v", p)
		}
		if p.X != math.Trunc(p.X) || p.Z != math.Trunc(p.Z) {
			t.Fatalf("food not grid aligned at %v", p)
		}
	}
}

func TestSpawnAvoidsSnake(t *testing.T) {
	fm, _ := newTestFoodManager(3)
	// Cover the middle of the arena
	var body []types.Vec3
	for x := -60.0; x <= 60; x += 3 {
		for z := -60.0; z <= 60; z += 3 {
			body = append(body, types.Vec3{X: x, Y: 1, Z: z})
		}
	}
	collisions := 0
	for i := 0; i < 200; i++ {
		fm.Deactivate()
		fm.SpawnIfAbsent(body)
		p := fm.Position()
		for _, b := range body {
			if types.WithinTolerance(p, b, types.Tolerance) {
				collisions++
				break
			}
		}
	}
	// About 40% of the arena is covered, so ten misses in a row are rare
	if collisions > 2 {
		t.Errorf("food landed on the snake %d times", collisions)
	}
}

func TestBlink(t *testing.T) {
	fm, _ := newTestFoodManager(1)

	fm.Blink()
	if fm.Color() != types.FoodColorA {
		t.Error("inactive food should not blink")
	}

	fm.SpawnIfAbsent(nil)
	for i := 0; i < types.BlinkFrames-1; i++ {
		fm.Blink()
	}
	if fm.Color() != types.FoodColorA {
		t.Fatalf("color flipped before %d frames", types.BlinkFrames)
	}
	fm.Blink()
	if fm.Color() != types.FoodColorB {
		t.Fatalf("color should flip on frame %d", types.BlinkFrames)
	}
	for i := 0; i < types.BlinkFrames; i++ {
		fm.Blink()
	}
	if fm.Color() != types.FoodColorA {
		t.Error("color should flip back")
	}
}

func TestCheckEaten(t *testing.T) {
	fm, _ := newTestFoodManager(1)
	if fm.CheckEaten(types.Vec3{}) {
		t.Error("inactive food cannot be eaten")
	}

	fm.SpawnIfAbsent(nil)
	food := fm.Position()

	miss := food.Add(types.Vec3{X: types.Tolerance + 1})
	if fm.CheckEaten(miss) || !fm.Active() {
		t.Fatal("head outside tolerance should not eat")
	}

	hit := food.Add(types.Vec3{X: types.Tolerance, Z: -types.Tolerance})
	if !fm.CheckEaten(hit) {
		t.Fatal("head within tolerance should eat")
	}
	if fm.Active() {
		t.Error("food should be inactive after being eaten")
	}
	if fm.CheckEaten(hit) {
		t.Error("food should only count once")
	}
}
