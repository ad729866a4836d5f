// internal/system/movement.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/input"
)

// MovementSystem двигает игрока по клеткам согласно намерению ввода
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update выполняет один шаг игрока на клетку, если задержка движения истекла.
// Направление взгляда меняется даже при отклонённом шаге, а задержка
// отсчитывается только от успешного.
func (s *MovementSystem) Update(intent input.Intent) bool {
	player := s.world.Player
	if player == nil {
		return false
	}
	intent = intent.Normalized()
	if !intent.Moving() {
		return false
	}
	now := s.world.GameTime
	if !player.Move.Ready(now) {
		return false
	}

	dx := float64(intent.DX)
	dy := float64(intent.DY)
	player.Facing = component.DirectionFromDelta(dx, dy)
	moved := player.TryMove(dx*config.TileSize, dy*config.TileSize, s.world.Area, s.world.Obstacles)
	if moved {
		player.Move.Trigger(now)
	}
	return moved
}
