// internal/app/map_generation.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/pkg/gridmap"
)

// ErrMapGenerationFailed возвращается, когда очередной объект не удалось
// разместить за config.MaxPlacementAttempts попыток.
var ErrMapGenerationFailed = errors.New("map generation failed")

// CellSampler - источник случайных клеток и типов врагов для генератора
type CellSampler interface {
	Cell(size int) gridmap.Cell
	ChooseKind(kinds []defs.EnemyKind) defs.EnemyKind
}

// StartCell возвращает клетку появления игрока: центр сетки
func StartCell(size int) gridmap.Cell {
	return gridmap.Cell{Row: size / 2, Col: size / 2}
}

// GenerateMap расставляет препятствия и врагов уровня в пустом мире.
// Игрок должен уже стоять в стартовой клетке.
func GenerateMap(world *entity.World, level defs.LevelDefinition, library *defs.Library, rng CellSampler) error {
	start := gridmap.CellAt(world.Player.X, world.Player.Y, config.TileSize)

	for len(world.Obstacles) < level.ObstacleCount {
		if err := placeObstacle(world, start, rng); err != nil {
			return fmt.Errorf("level %d: obstacle %d of %d: %w",
				level.ID, len(world.Obstacles)+1, level.ObstacleCount, err)
		}
	}
	for len(world.Enemies) < level.EnemyCount {
		if err := placeEnemy(world, start, level, library, rng); err != nil {
			return fmt.Errorf("level %d: enemy %d of %d: %w",
				level.ID, len(world.Enemies)+1, level.EnemyCount, err)
		}
	}

	log.Printf("Generated level %d: %dx%d grid, %d obstacles, %d enemies",
		level.ID, level.GridSize, level.GridSize, len(world.Obstacles), len(world.Enemies))
	return nil
}

// placeObstacle пробует случайные клетки, пока одна не пройдёт проверку:
// вне зоны игрока, свободна и не разрывает связность карты.
func placeObstacle(world *entity.World, start gridmap.Cell, rng CellSampler) error {
	size := world.Grid.Size()
	for attempt := 0; attempt < config.MaxPlacementAttempts; attempt++ {
		cell := rng.Cell(size)
		if cell.Chebyshev(start) < config.ObstacleExclusion {
			continue
		}
		ok, err := canPlaceObstacle(world, cell, start)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		world.Obstacles = append(world.Obstacles, component.NewObstacle(world.NewEntity(), cell))
		return nil
	}
	return ErrMapGenerationFailed
}

// canPlaceObstacle временно блокирует клетку и проверяет связность.
// При успехе клетка остаётся заблокированной.
func canPlaceObstacle(world *entity.World, cell, start gridmap.Cell) (bool, error) {
	blocked, err := world.Grid.IsBlocked(cell)
	if err != nil || blocked {
		return false, err
	}

	if err := world.Grid.MarkBlocked(cell); err != nil {
		return false, err
	}
	connected, err := gridmap.IsConnected(world.Grid, start)
	if err != nil || !connected {
		_ = world.Grid.MarkFree(cell)
		return false, err
	}
	return true, nil
}

// placeEnemy пробует случайные клетки вне зоны игрока, из которых есть
// путь до игрока и где враг не пересекает уже размещённых.
func placeEnemy(world *entity.World, start gridmap.Cell, level defs.LevelDefinition, library *defs.Library, rng CellSampler) error {
	size := world.Grid.Size()
	for attempt := 0; attempt < config.MaxPlacementAttempts; attempt++ {
		cell := rng.Cell(size)
		if cell.Chebyshev(start) < config.EnemyExclusion {
			continue
		}
		blocked, err := world.Grid.IsBlocked(cell)
		if err != nil {
			return err
		}
		if blocked {
			continue
		}
		reachable, err := gridmap.HasPath(world.Grid, cell, start)
		if err != nil {
			return err
		}
		if !reachable {
			continue
		}

		kind := rng.ChooseKind(level.EnemyKinds)
		def, ok := library.Enemy(kind)
		if !ok {
			return fmt.Errorf("%w: level %d allows unknown enemy kind %q", defs.ErrInvalidLevel, level.ID, kind)
		}
		x, y := cell.TopLeft(config.TileSize)
		if overlapsEnemy(world, component.Rect{X: x, Y: y, W: config.EntitySize, H: config.EntitySize}) {
			continue
		}
		world.Enemies = append(world.Enemies, component.NewEnemy(world.NewEntity(), x, y, def))
		return nil
	}
	return ErrMapGenerationFailed
}

func overlapsEnemy(world *entity.World, bounds component.Rect) bool {
	for _, e := range world.Enemies {
		if bounds.Overlaps(e.Bounds()) {
			return true
		}
	}
	return false
}
