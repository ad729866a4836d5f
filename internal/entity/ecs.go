// internal/entity/ecs.go
package entity

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/gridmap"
)

// World хранит все сущности текущего уровня и игровые часы.
type World struct {
	GameTime  float64
	NextID    types.EntityID
	Grid      *gridmap.Grid
	Area      component.Rect
	Player    *component.Player
	Enemies   []*component.Enemy
	Bullets   []*component.Bullet
	Obstacles []*component.Obstacle
	Phase     component.Phase
}

// NewWorld создаёт пустой мир для сетки size x size
func NewWorld(size int, tileSize float64) *World {
	side := float64(size) * tileSize
	return &World{
		NextID: 1,
		Grid:   gridmap.NewGrid(size),
		Area:   component.Rect{X: 0, Y: 0, W: side, H: side},
		Phase:  component.PhasePlaying,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// LiveObstacles возвращает препятствия с положительным здоровьем
func (w *World) LiveObstacles() []*component.Obstacle {
	live := make([]*component.Obstacle, 0, len(w.Obstacles))
	for _, o := range w.Obstacles {
		if o.Alive() {
			live = append(live, o)
		}
	}
	return live
}

// RemoveEnemy удаляет врага по id. Порядок остальных сохраняется.
func (w *World) RemoveEnemy(id types.EntityID) bool {
	for i, e := range w.Enemies {
		if e.ID == id {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveObstacle удаляет препятствие и освобождает его клетку на сетке
func (w *World) RemoveObstacle(id types.EntityID) bool {
	for i, o := range w.Obstacles {
		if o.ID == id {
			w.Obstacles = append(w.Obstacles[:i], w.Obstacles[i+1:]...)
			_ = w.Grid.MarkFree(o.Cell)
			return true
		}
	}
	return false
}

// Entities возвращает снимки всех сущностей в порядке отрисовки:
// препятствия, враги, игрок, снаряды.
func (w *World) Entities() []component.View {
	views := make([]component.View, 0, len(w.Obstacles)+len(w.Enemies)+len(w.Bullets)+1)
	for _, o := range w.Obstacles {
		views = append(views, o.View())
	}
	for _, e := range w.Enemies {
		views = append(views, e.View())
	}
	if w.Player != nil {
		views = append(views, w.Player.View())
	}
	for _, b := range w.Bullets {
		views = append(views, b.View())
	}
	return views
}
