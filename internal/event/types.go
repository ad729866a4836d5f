// internal/event/types.go
package event

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
)

const (
	LevelCompleted    EventType = "LevelCompleted"    // все враги уничтожены
	GameOver          EventType = "GameOver"          // здоровье игрока кончилось
	EnemyDestroyed    EventType = "EnemyDestroyed"    // враг уничтожен снарядом игрока
	ObstacleDestroyed EventType = "ObstacleDestroyed" // препятствие разрушено, клетка свободна
	PlayerDamaged     EventType = "PlayerDamaged"
	PlayerLevelUp     EventType = "PlayerLevelUp"
	ShotFired         EventType = "ShotFired"
)

// LevelResult - данные LevelCompleted и GameOver
type LevelResult struct {
	LevelID int
	Time    float64
}

// EnemyDestroyedData - данные EnemyDestroyed
type EnemyDestroyedData struct {
	ID   types.EntityID
	Kind defs.EnemyKind
	Exp  int
}

// ObstacleDestroyedData - данные ObstacleDestroyed
type ObstacleDestroyedData struct {
	ID  types.EntityID
	Row int
	Col int
}

// PlayerDamagedData - данные PlayerDamaged
type PlayerDamagedData struct {
	Amount    int
	Remaining int
}

// PlayerLevelUpData - данные PlayerLevelUp
type PlayerLevelUpData struct {
	Level   int
	Upgrade component.Upgrade
}

// ShotFiredData - данные ShotFired
type ShotFiredData struct {
	FromPlayer bool
	Count      int
}
