package interfaces

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/input"
)

// Game - запущенный уровень с точки зрения контроллера сессии
type Game interface {
	GameContext
	Update(deltaTime float64, intent input.Intent)
	Snapshot() component.Snapshot
	Subscribe(eventType event.EventType, listener event.Listener)
}
