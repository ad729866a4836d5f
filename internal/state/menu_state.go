// internal/state/menu_state.go
package state

import (
	"log"

	"go-arena-shooter/internal/input"
)

// MenuState - выбор уровня
type MenuState struct {
	session *Session
}

func NewMenuState(session *Session) *MenuState {
	return &MenuState{session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64, intent input.Intent) {
	if intent.SelectLevel == 0 {
		return
	}
	if err := m.session.SelectLevel(intent.SelectLevel); err != nil {
		log.Printf("Cannot start level %d: %v", intent.SelectLevel, err)
	}
}

func (m *MenuState) Exit() {}
