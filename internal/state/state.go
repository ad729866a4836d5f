// internal/state/state.go
package state

import "go-arena-shooter/internal/input"

// State - интерфейс для всех состояний сессии
type State interface {
	Enter()
	Update(deltaTime float64, intent input.Intent)
	Exit()
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64, intent input.Intent) {
	if sm.current != nil {
		sm.current.Update(deltaTime, intent)
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}
