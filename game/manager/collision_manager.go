package manager

import (
	"math"

	"snake3d/game/types"
)

type CollisionManager struct {
	halfExtent float64
	tolerance  float64
	skip       int
}

func NewCollisionManager(halfExtent, tolerance float64, skip int) *CollisionManager {
	return &CollisionManager{
		halfExtent: halfExtent,
		tolerance:  tolerance,
		skip:       skip,
	}
}

// IsWallCollision reports whether the head has left the arena. The edge itself is inside.
func (cm *CollisionManager) IsWallCollision(head types.Vec3) bool {
	return math.Abs(head.X) > cm.halfExtent || math.Abs(head.Z) > cm.halfExtent
}

// IsSelfCollision checks the head (positions[0]) against the body, ignoring
// the segments right behind it which always overlap the head's cube.
func (cm *CollisionManager) IsSelfCollision(positions []types.Vec3) bool {
	if len(positions) == 0 {
		return false
	}
	head := positions[0]
	for i := cm.skip + 1; i < len(positions); i++ {
		if types.WithinTolerance(head, positions[i], cm.tolerance) {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) IsFoodCollision(head, food types.Vec3) bool {
	return types.WithinTolerance(head, food, cm.tolerance)
}

// ValidateSpawnPosition reports whether pos is clear of every occupied position
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Vec3, occupied []types.Vec3) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	for _, p := range occupied {
		if types.WithinTolerance(pos, p, cm.tolerance) {
			return false
		}
	}
	return true
}
