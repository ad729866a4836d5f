// internal/system/projectile.go
package system

import (
	"slices"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

// ProjectileSystem двигает снаряды, разрешает попадания и удаляет
// отработавшие снаряды. Разрушенные цели убираются из мира сразу.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, bullet := range s.world.Bullets {
		bullet.Advance(deltaTime)
	}
	for _, bullet := range s.world.Bullets {
		s.resolve(bullet)
	}
	s.prune()
}

func (s *ProjectileSystem) resolve(bullet *component.Bullet) {
	bounds := bullet.Bounds()

	if bullet.FromPlayer {
		s.hitObstacles(bullet, bounds)
		s.hitEnemies(bullet, bounds)
	} else if player := s.world.Player; player != nil && bounds.Overlaps(player.Bounds()) {
		player.TakeDamage(bullet.Damage)
		bullet.Spent = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerDamaged,
			Data: event.PlayerDamagedData{Amount: bullet.Damage, Remaining: player.Value},
		})
	}

	// Любой снаряд гасится о препятствие, даже без урона
	for _, obstacle := range s.world.Obstacles {
		if bounds.Overlaps(obstacle.Bounds()) {
			bullet.Spent = true
			break
		}
	}
}

func (s *ProjectileSystem) hitObstacles(bullet *component.Bullet, bounds component.Rect) {
	for _, obstacle := range s.world.LiveObstacles() {
		if !bounds.Overlaps(obstacle.Bounds()) {
			continue
		}
		bullet.Spent = true
		if !obstacle.TakeDamage(bullet.Damage) {
			continue
		}
		s.world.RemoveObstacle(obstacle.ID)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ObstacleDestroyed,
			Data: event.ObstacleDestroyedData{ID: obstacle.ID, Row: obstacle.Cell.Row, Col: obstacle.Cell.Col},
		})
	}
}

func (s *ProjectileSystem) hitEnemies(bullet *component.Bullet, bounds component.Rect) {
	for _, enemy := range slices.Clone(s.world.Enemies) {
		if !bounds.Overlaps(enemy.Bounds()) {
			continue
		}
		bullet.Spent = true
		if !enemy.TakeDamage(bullet.Damage) {
			continue
		}
		s.world.RemoveEnemy(enemy.ID)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyDestroyedData{ID: enemy.ID, Kind: enemy.Kind, Exp: enemy.ExpReward},
		})
	}
}

// prune удаляет погашенные и вылетевшие снаряды
func (s *ProjectileSystem) prune() {
	bullets := s.world.Bullets[:0]
	for _, bullet := range s.world.Bullets {
		if bullet.Spent || bullet.OutOfBounds(s.world.Area) {
			continue
		}
		bullets = append(bullets, bullet)
	}
	clear(s.world.Bullets[len(bullets):])
	s.world.Bullets = bullets
}
