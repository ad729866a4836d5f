// internal/defs/levels.go
package defs

// LevelDefinition описывает параметры генерации одного уровня.
type LevelDefinition struct {
	ID            int         `yaml:"id"`
	GridSize      int         `yaml:"gridSize"`      // Сторона квадратной карты в клетках
	EnemyCount    int         `yaml:"enemyCount"`    // Сколько врагов разместить
	ObstacleCount int         `yaml:"obstacleCount"` // Сколько препятствий разместить
	EnemyKinds    []EnemyKind `yaml:"enemyKinds"`    // Допустимые виды врагов, выбираются равновероятно
}

// AllowsKind сообщает, может ли на уровне появиться враг данного вида.
func (l LevelDefinition) AllowsKind(kind EnemyKind) bool {
	for _, k := range l.EnemyKinds {
		if k == kind {
			return true
		}
	}
	return false
}
