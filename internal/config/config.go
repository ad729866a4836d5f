// internal/config/config.go
package config

import "image/color"

const (
	TileSize     = 40.0 // Размер клетки в пикселях
	EntitySize   = 40.0 // Игрок и враги
	ObstacleSize = TileSize - 4
	BulletSize   = 4.0

	StatusBarWidth = 150
	MaxGridSize    = 15
	ScreenWidth    = MaxGridSize*TileSize + StatusBarWidth
	ScreenHeight   = MaxGridSize * TileSize
	MaxDeltaTime   = 0.06

	BulletSpeed = 80.0 // pixels per second

	PlayerMoveDelay      = 0.15 // секунды между шагами по сетке
	PlayerShootCooldown  = 0.5
	PlayerStartHealth    = 5
	PlayerStartAttack    = 1
	PlayerStartBullets   = 1
	ExpPerLevel          = 3
	EnemyShootCooldown   = 1.0
	ObstacleHealth       = 3
	ObstacleExclusion    = 2 // препятствия не ближе этого расстояния Чебышёва к старту игрока
	EnemyExclusion       = 3 // враги не ближе этого расстояния Чебышёва к старту игрока
	MaxPlacementAttempts = 10000

	HealthBarHeight  = 4
	HealthBarPadding = 2

	LevelButtonWidth   = 200
	LevelButtonHeight  = 50
	LevelButtonSpacing = 20
)

var (
	BackgroundColor   = color.RGBA{10, 12, 20, 255}
	GridLineColor     = color.RGBA{30, 36, 54, 255}
	StatusBarColor    = color.RGBA{20, 20, 30, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	DividerColor      = color.RGBA{0, 255, 102, 255}
	PlayerColor       = color.RGBA{0, 170, 68, 255}
	PlayerAccentColor = color.RGBA{0, 255, 204, 255}
	PlayerBulletColor = color.RGBA{0, 255, 102, 255}
	EnemyBulletColor  = color.RGBA{255, 68, 68, 255}
	HealthBarBgColor  = color.RGBA{51, 51, 51, 255}
	LockedButtonColor = color.RGBA{60, 60, 70, 220}
	OpenButtonColor   = color.RGBA{70, 130, 180, 220}
	HealthColors      = []color.RGBA{
		{46, 204, 113, 255}, // > 60%
		{241, 196, 15, 255}, // > 30%
		{231, 76, 60, 255},  // остальное
	}
	// ObstacleColors - заливка препятствия по доле оставшегося здоровья: > 2/3, > 1/3, остальное.
	ObstacleColors = []color.RGBA{
		{51, 51, 68, 255},
		{68, 51, 51, 255},
		{85, 51, 51, 255},
	}
	EnemyColors = map[string]color.RGBA{
		"fixed":  {0, 68, 170, 255},
		"medium": {221, 170, 0, 255},
		"heavy":  {170, 0, 0, 255},
	}
)
