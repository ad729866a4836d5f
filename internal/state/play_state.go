// internal/state/play_state.go
package state

import (
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/input"
)

var _ State = (*PlayState)(nil)

// PlayState - идущий уровень. Завершение уровня применяется после шага
// симуляции, а не внутри обработки события.
type PlayState struct {
	session *Session
	game    interfaces.Game
	outcome Outcome
}

func NewPlayState(session *Session, game interfaces.Game) *PlayState {
	return &PlayState{session: session, game: game}
}

func (p *PlayState) Enter() {
	p.game.Subscribe(event.LevelCompleted, p)
	p.game.Subscribe(event.GameOver, p)
}

func (p *PlayState) OnEvent(e event.Event) {
	if p.outcome != OutcomeNone {
		return
	}
	switch e.Type {
	case event.LevelCompleted:
		p.outcome = OutcomeCompleted
	case event.GameOver:
		p.outcome = OutcomeGameOver
	}
}

func (p *PlayState) Update(deltaTime float64, intent input.Intent) {
	if intent.Back {
		p.session.finishLevel(p.game.LevelID(), OutcomeAbandoned)
		return
	}
	p.game.Update(deltaTime, intent)
	if p.outcome != OutcomeNone {
		p.session.finishLevel(p.game.LevelID(), p.outcome)
	}
}

func (p *PlayState) Exit() {}
