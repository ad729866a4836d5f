// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed enemies.yaml
var defaultEnemiesYAML []byte

//go:embed levels.yaml
var defaultLevelsYAML []byte

type enemiesFile struct {
	Enemies []EnemyDefinition `yaml:"enemies"`
}

type levelsFile struct {
	Levels []LevelDefinition `yaml:"levels"`
}

// DefaultLibrary разбирает встроенные определения врагов и уровней.
func DefaultLibrary() (*Library, error) {
	return ParseLibrary(defaultEnemiesYAML, defaultLevelsYAML)
}

// LoadLibrary reads enemy and level definitions from YAML files on disk.
func LoadLibrary(enemiesPath, levelsPath string) (*Library, error) {
	enemiesData, err := os.ReadFile(enemiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file %s: %w", enemiesPath, err)
	}
	levelsData, err := os.ReadFile(levelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level definitions file %s: %w", levelsPath, err)
	}
	lib, err := ParseLibrary(enemiesData, levelsData)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d enemy and %d level definitions", len(lib.Enemies), len(lib.Levels))
	return lib, nil
}

// ParseLibrary разбирает и проверяет YAML-определения.
func ParseLibrary(enemiesData, levelsData []byte) (*Library, error) {
	var ef enemiesFile
	if err := yaml.Unmarshal(enemiesData, &ef); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	var lf levelsFile
	if err := yaml.Unmarshal(levelsData, &lf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	lib := &Library{Enemies: make(map[EnemyKind]EnemyDefinition)}
	for _, def := range ef.Enemies {
		if err := validateEnemy(def); err != nil {
			return nil, err
		}
		if _, dup := lib.Enemies[def.Kind]; dup {
			return nil, fmt.Errorf("duplicate enemy kind %q", def.Kind)
		}
		lib.Enemies[def.Kind] = def
	}
	if len(lib.Enemies) == 0 {
		return nil, fmt.Errorf("at least one enemy definition is required")
	}

	lib.Levels = append(lib.Levels, lf.Levels...)
	sort.Slice(lib.Levels, func(i, j int) bool { return lib.Levels[i].ID < lib.Levels[j].ID })
	if len(lib.Levels) == 0 {
		return nil, fmt.Errorf("at least one level definition is required")
	}
	for i, lvl := range lib.Levels {
		if lvl.ID != i+1 {
			return nil, fmt.Errorf("%w: level ids must be consecutive from 1, got %d at position %d", ErrInvalidLevel, lvl.ID, i+1)
		}
		if err := validateLevel(lvl, lib.Enemies); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func validateEnemy(def EnemyDefinition) error {
	if def.Kind == "" {
		return fmt.Errorf("enemy definition without kind")
	}
	if def.Health < 1 {
		return fmt.Errorf("enemy %s: health must be at least 1, got %d", def.Kind, def.Health)
	}
	if def.Attack < 0 {
		return fmt.Errorf("enemy %s: attack cannot be negative, got %d", def.Kind, def.Attack)
	}
	if def.Speed < 0 {
		return fmt.Errorf("enemy %s: speed cannot be negative, got %v", def.Kind, def.Speed)
	}
	if def.Exp < 0 {
		return fmt.Errorf("enemy %s: exp cannot be negative, got %d", def.Kind, def.Exp)
	}
	return nil
}

func validateLevel(lvl LevelDefinition, enemies map[EnemyKind]EnemyDefinition) error {
	if lvl.GridSize < 1 {
		return fmt.Errorf("%w: level %d: gridSize must be at least 1, got %d", ErrInvalidLevel, lvl.ID, lvl.GridSize)
	}
	if lvl.EnemyCount < 0 || lvl.ObstacleCount < 0 {
		return fmt.Errorf("%w: level %d: counts cannot be negative", ErrInvalidLevel, lvl.ID)
	}
	if lvl.EnemyCount > 0 && len(lvl.EnemyKinds) == 0 {
		return fmt.Errorf("%w: level %d: enemyKinds cannot be empty", ErrInvalidLevel, lvl.ID)
	}
	for _, kind := range lvl.EnemyKinds {
		if _, ok := enemies[kind]; !ok {
			return fmt.Errorf("%w: level %d: unknown enemy kind %q", ErrInvalidLevel, lvl.ID, kind)
		}
	}
	return nil
}
