// pkg/gridmap/grid.go
package gridmap

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds возвращается при обращении к клетке за пределами сетки.
var ErrOutOfBounds = errors.New("cell out of bounds")

const (
	cellFree    uint8 = 0
	cellBlocked uint8 = 1
)

// Grid - квадратная сетка занятости size x size, индексируется [row][col].
type Grid struct {
	size  int
	cells [][]uint8
}

// NewGrid создаёт полностью свободную сетку
func NewGrid(size int) *Grid {
	cells := make([][]uint8, size)
	for row := range cells {
		cells[row] = make([]uint8, size)
	}
	return &Grid{size: size, cells: cells}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) check(c Cell) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: (%d, %d) in grid of size %d", ErrOutOfBounds, c.Row, c.Col, g.size)
	}
	return nil
}

// MarkBlocked помечает клетку занятой
func (g *Grid) MarkBlocked(c Cell) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.cells[c.Row][c.Col] = cellBlocked
	return nil
}

// MarkFree освобождает клетку
func (g *Grid) MarkFree(c Cell) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.cells[c.Row][c.Col] = cellFree
	return nil
}

// IsBlocked сообщает, занята ли клетка
func (g *Grid) IsBlocked(c Cell) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	return g.cells[c.Row][c.Col] == cellBlocked, nil
}

// isFree - внутренняя версия без проверки ошибок: клетки вне сетки не свободны.
func (g *Grid) isFree(c Cell) bool {
	return g.Contains(c) && g.cells[c.Row][c.Col] == cellFree
}

// BlockedCount возвращает количество занятых клеток
func (g *Grid) BlockedCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == cellBlocked {
				n++
			}
		}
	}
	return n
}
