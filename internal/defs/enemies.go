// internal/defs/enemies.go
package defs

// EnemyKind - вид врага.
type EnemyKind string

const (
	EnemyFixed  EnemyKind = "fixed"
	EnemyMedium EnemyKind = "medium"
	EnemyHeavy  EnemyKind = "heavy"
)

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	Kind   EnemyKind `yaml:"kind"`
	Health int       `yaml:"health"`
	Attack int       `yaml:"attack"`
	Speed  float64   `yaml:"speed"` // пикселей в секунду, 0 - стационарный
	Exp    int       `yaml:"exp"`   // опыт игроку за уничтожение
}
