package types

import "math"

// Vec3 is a world-space position
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Color is a packed 0xRRGGBB value
type Color uint32

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Key is a keyboard key code as delivered by keydown events
type Key int

const (
	KeyLeft  Key = 37
	KeyUp    Key = 38
	KeyRight Key = 39
	KeyDown  Key = 40
)

// Game constants
const (
	ArenaHalfExtent   = 100.0 // Head must satisfy |x|,|z| <= this
	SpawnExtent       = 99    // Food is placed on integers in [-SpawnExtent, SpawnExtent]
	Step              = 1.0   // Head translation per tick
	SegmentSize       = 6.0   // Cube edge length
	Tolerance         = SegmentSize / 2
	SelfCollisionSkip = 10 // Segments behind the head ignored by self-collision
	BlinkFrames       = 15
	MaxSpawnAttempts  = 10
	NoticeFrames      = 180
)

// Colors
const (
	SnakeColor  Color = 0x00ff00
	FoodColorA  Color = 0xff0000
	FoodColorB  Color = 0xffff00
	BorderColor Color = 0x444444
)

// StartPosition is where a fresh head is placed
var StartPosition = Vec3{X: 1, Y: 1, Z: 1}

// WithinTolerance reports whether a and b fall in the same tolerance box on the x/z plane
func WithinTolerance(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Z-b.Z) <= tol
}
