// internal/system/combat.go
package system

import (
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

// CombatSystem создаёт снаряды: залпы игрока и выстрелы врагов
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

// PlayerShoot выпускает залп игрока, если перезарядка закончилась.
// Возвращает число выпущенных снарядов.
func (s *CombatSystem) PlayerShoot() int {
	player := s.world.Player
	if player == nil {
		return 0
	}
	volley := player.Shoot(s.world.GameTime, s.world)
	if len(volley) == 0 {
		return 0
	}
	s.world.Bullets = append(s.world.Bullets, volley...)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotFiredData{FromPlayer: true, Count: len(volley)},
	})
	return len(volley)
}

// UpdateEnemies двигает каждого врага к игроку и добавляет новые
// вражеские снаряды в общий список.
func (s *CombatSystem) UpdateEnemies(deltaTime float64) {
	player := s.world.Player
	if player == nil {
		return
	}
	now := s.world.GameTime
	for _, enemy := range s.world.Enemies {
		bullet := enemy.Update(deltaTime, now, player, s.world.Obstacles, s.world.Area, s.world)
		if bullet == nil {
			continue
		}
		s.world.Bullets = append(s.world.Bullets, bullet)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ShotFired,
			Data: event.ShotFiredData{FromPlayer: false, Count: 1},
		})
	}
}
