package render

import (
	"testing"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
)

func TestHealthColor(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{1, 0},
		{0.61, 0},
		{0.6, 1},
		{0.31, 1},
		{0.3, 2},
		{0, 2},
	}
	for _, tt := range tests {
		if got := HealthColor(tt.fraction); got != config.HealthColors[tt.want] {
			t.Errorf("fraction %v: expected color %d, got %v", tt.fraction, tt.want, got)
		}
	}
}

func TestObstacleColor(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{1, 0},
		{2.0 / 3.0, 1},
		{1.0 / 3.0, 2},
		{0, 2},
	}
	for _, tt := range tests {
		if got := ObstacleColor(tt.fraction); got != config.ObstacleColors[tt.want] {
			t.Errorf("fraction %v: expected color %d, got %v", tt.fraction, tt.want, got)
		}
	}
}

func TestEnemyColor(t *testing.T) {
	if EnemyColor(defs.EnemyHeavy) != config.EnemyColors["heavy"] {
		t.Error("expected heavy enemy color from config")
	}
	if got := EnemyColor("ghost"); got.R != 128 {
		t.Errorf("expected grey fallback, got %v", got)
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(config.PlayerColor)
	if got.G != config.PlayerColor.G/2 || got.A != config.PlayerColor.A {
		t.Errorf("unexpected darkened color %v", got)
	}
}
