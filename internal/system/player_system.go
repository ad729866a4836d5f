// internal/system/player_system.go
package system

import (
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

// PlayerSystem начисляет опыт за уничтоженных врагов и применяет повышения уровня.
type PlayerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             component.Randomizer
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng component.Randomizer) *PlayerSystem {
	return &PlayerSystem{world: world, eventDispatcher: eventDispatcher, rng: rng}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	data, ok := e.Data.(event.EnemyDestroyedData)
	if !ok || s.world.Player == nil {
		return
	}

	player := s.world.Player
	upgrade, leveled := player.GainExp(data.Exp, s.rng)
	if !leveled {
		return
	}
	log.Printf("Player reached level %d, upgrade: %s", player.Level, upgrade)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerLevelUp,
		Data: event.PlayerLevelUpData{Level: player.Level, Upgrade: upgrade},
	})
}
