// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel возвращается при запросе неизвестного уровня.
var ErrInvalidLevel = errors.New("invalid level config")

// Library holds every enemy and level definition used by the game.
type Library struct {
	Enemies map[EnemyKind]EnemyDefinition
	Levels  []LevelDefinition // отсортированы по ID, начиная с 1
}

// Level возвращает определение уровня по его номеру.
func (l *Library) Level(id int) (LevelDefinition, error) {
	for _, lvl := range l.Levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return LevelDefinition{}, fmt.Errorf("%w: unknown level %d", ErrInvalidLevel, id)
}

// Enemy возвращает статы врага указанного вида.
func (l *Library) Enemy(kind EnemyKind) (EnemyDefinition, bool) {
	def, ok := l.Enemies[kind]
	return def, ok
}

func (l *Library) LevelCount() int {
	return len(l.Levels)
}
