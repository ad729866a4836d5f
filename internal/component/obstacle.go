package component

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/gridmap"
)

// Obstacle - разрушаемое препятствие, занимающее одну клетку сетки.
type Obstacle struct {
	Body
	Health
	Cell gridmap.Cell
}

func NewObstacle(id types.EntityID, cell gridmap.Cell) *Obstacle {
	x, y := cell.TopLeft(config.TileSize)
	return &Obstacle{
		Body: Body{
			ID:     id,
			X:      x,
			Y:      y,
			Width:  config.ObstacleSize,
			Height: config.ObstacleSize,
		},
		Health: NewHealth(config.ObstacleHealth),
		Cell:   cell,
	}
}

func (o *Obstacle) View() View {
	return View{
		ID:        o.ID,
		Kind:      KindObstacle,
		X:         o.X,
		Y:         o.Y,
		W:         o.Width,
		H:         o.Height,
		Facing:    o.Facing,
		Health:    o.Value,
		MaxHealth: o.Max,
		HasHealth: true,
	}
}
