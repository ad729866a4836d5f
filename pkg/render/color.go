// pkg/render/color.go
package render

import (
	"image/color"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
)

// HealthColor выбирает цвет полоски здоровья: > 0.6 зелёный, > 0.3 жёлтый, иначе красный
func HealthColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.6:
		return config.HealthColors[0]
	case fraction > 0.3:
		return config.HealthColors[1]
	}
	return config.HealthColors[2]
}

// ObstacleColor выбирает заливку препятствия по доле здоровья: > 2/3, > 1/3, остальное
func ObstacleColor(fraction float64) color.RGBA {
	switch {
	case fraction > 2.0/3.0:
		return config.ObstacleColors[0]
	case fraction > 1.0/3.0:
		return config.ObstacleColors[1]
	}
	return config.ObstacleColors[2]
}

// EnemyColor возвращает цвет корпуса врага; для неизвестного типа - серый
func EnemyColor(kind defs.EnemyKind) color.RGBA {
	if c, ok := config.EnemyColors[string(kind)]; ok {
		return c
	}
	return color.RGBA{128, 128, 128, 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
