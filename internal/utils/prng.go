// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-arena-shooter/internal/defs"
	"go-arena-shooter/pkg/gridmap"
)

// PRNGService - обёртка над генератором случайных чисел с известным сидом,
// чтобы генерацию карты и улучшения можно было воспроизвести.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Cell выбирает равномерно случайную клетку сетки size x size
func (s *PRNGService) Cell(size int) gridmap.Cell {
	return gridmap.Cell{Row: s.rng.Intn(size), Col: s.rng.Intn(size)}
}

// ChooseKind выбирает тип врага из разрешённых уровнем.
// Для пустого списка возвращает пустую строку.
func (s *PRNGService) ChooseKind(kinds []defs.EnemyKind) defs.EnemyKind {
	if len(kinds) == 0 {
		return ""
	}
	return kinds[s.rng.Intn(len(kinds))]
}
