// internal/system/state.go
package system

import (
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/interfaces"
)

// StateSystem переводит уровень в конечное состояние и сообщает об этом
// ровно один раз.
type StateSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.PlayerDamaged, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.PlayerDamaged {
		return
	}
	if data, ok := e.Data.(event.PlayerDamagedData); ok && data.Remaining <= 0 {
		s.SwitchToGameOver()
	}
}

// Update проверяет завершение уровня после шага симуляции
func (s *StateSystem) Update() {
	if len(s.world.Enemies) == 0 {
		s.SwitchToLevelComplete()
	}
}

func (s *StateSystem) SwitchToGameOver() {
	if s.world.Phase.Ended() {
		return
	}
	s.world.Phase = component.PhaseGameOver
	log.Printf("Game over on level %d at %.2fs", s.gameContext.LevelID(), s.world.GameTime)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.result()})
}

func (s *StateSystem) SwitchToLevelComplete() {
	if s.world.Phase.Ended() {
		return
	}
	s.world.Phase = component.PhaseLevelComplete
	log.Printf("Level %d complete at %.2fs", s.gameContext.LevelID(), s.world.GameTime)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: s.result()})
}

func (s *StateSystem) Current() component.Phase {
	return s.world.Phase
}

func (s *StateSystem) result() event.LevelResult {
	return event.LevelResult{LevelID: s.gameContext.LevelID(), Time: s.world.GameTime}
}
