// component/movement.go
package component

import (
	"math"

	"go-arena-shooter/internal/types"
)

// Rect - осевой прямоугольник (левый верхний угол и размеры)
type Rect struct {
	X, Y, W, H float64
}

// Overlaps проверяет пересечение двух прямоугольников. Касание краями не считается.
func (a Rect) Overlaps(b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Contains сообщает, лежит ли r целиком внутри a.
func (a Rect) Contains(r Rect) bool {
	return r.X >= a.X && r.X+r.W <= a.X+a.W &&
		r.Y >= a.Y && r.Y+r.H <= a.Y+a.H
}

// Direction - направление взгляда сущности
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Vector возвращает единичный вектор направления в экранных координатах (y вниз)
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// DirectionFromDelta выбирает направление по доминирующей оси.
// При равенстве модулей побеждает вертикаль.
func DirectionFromDelta(dx, dy float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Down
	}
	return Up
}

// Body - позиция, размер и направление сущности
type Body struct {
	ID            types.EntityID
	X, Y          float64
	Width, Height float64
	Facing        Direction
}

func (b *Body) EntityID() types.EntityID {
	return b.ID
}

func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

func (b *Body) Center() (x, y float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// TryMove сдвигает тело на (dx, dy), если новое положение остаётся внутри area
// и не пересекает ни одно препятствие. Иначе позиция не меняется.
func (b *Body) TryMove(dx, dy float64, area Rect, obstacles []*Obstacle) bool {
	next := Rect{X: b.X + dx, Y: b.Y + dy, W: b.Width, H: b.Height}
	if !area.Contains(next) {
		return false
	}
	for _, o := range obstacles {
		if next.Overlaps(o.Bounds()) {
			return false
		}
	}
	b.X = next.X
	b.Y = next.Y
	return true
}
