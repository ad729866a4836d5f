// pkg/gridmap/cell.go
package gridmap

import (
	"math"

	"go-arena-shooter/pkg/utils"
)

// Cell адресует клетку сетки по строке и столбцу
type Cell struct {
	Row, Col int
}

// NeighborDirections - четыре направления обхода: вверх, вправо, вниз, влево.
var NeighborDirections = []Cell{
	{Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1},
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Chebyshev вычисляет расстояние Чебышёва между клетками
func (c Cell) Chebyshev(to Cell) int {
	return max(utils.Abs(c.Row-to.Row), utils.Abs(c.Col-to.Col))
}

// TopLeft конвертирует клетку в пиксельные координаты левого верхнего угла
func (c Cell) TopLeft(tileSize float64) (x, y float64) {
	return float64(c.Col) * tileSize, float64(c.Row) * tileSize
}

// CellAt конвертирует пиксельные координаты в клетку
func CellAt(x, y, tileSize float64) Cell {
	return Cell{
		Row: int(math.Floor(y / tileSize)),
		Col: int(math.Floor(x / tileSize)),
	}
}
