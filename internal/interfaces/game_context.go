// internal/interfaces/game_context.go
package interfaces

// GameContext - то, что системам нужно знать об уровне, не завися от app.
type GameContext interface {
	LevelID() int
}
