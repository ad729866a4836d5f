// component/render.go
package component

import (
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
)

// Kind различает варианты сущностей в снимке для отрисовки
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindObstacle
)

// View - неизменяемый снимок сущности для отрисовки
type View struct {
	ID         types.EntityID
	Kind       Kind
	EnemyKind  defs.EnemyKind
	X, Y, W, H float64
	Facing     Direction
	Health     int
	MaxHealth  int
	HasHealth  bool
	FromPlayer bool
}

// HealthFraction возвращает долю здоровья в [0, 1]
func (v View) HealthFraction() float64 {
	h := Health{Value: v.Health, Max: v.MaxHealth}
	return h.Fraction()
}

// ShowsHealthBar сообщает, рисуется ли полоска здоровья.
// Препятствия показывают повреждения заливкой, а не полоской.
func (v View) ShowsHealthBar() bool {
	return v.HasHealth && v.Kind != KindObstacle
}

// Entity - общие возможности всех сущностей уровня
type Entity interface {
	EntityID() types.EntityID
	Bounds() Rect
	View() View
}

// IDSource выдаёт идентификаторы для новых сущностей
type IDSource interface {
	NewEntity() types.EntityID
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Bullet)(nil)
	_ Entity = (*Obstacle)(nil)
)

// PlayerStats - показатели игрока для строки состояния
type PlayerStats struct {
	Health      int
	MaxHealth   int
	Attack      int
	BulletCount int
	Exp         int
	ExpToLevel  int
	Level       int
}

// Snapshot - состояние уровня на один кадр, которого достаточно для отрисовки
type Snapshot struct {
	LevelID  int
	GridSize int
	TileSize float64
	Phase    Phase
	Time     float64
	Player   PlayerStats
	Entities []View
}
