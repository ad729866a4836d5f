// internal/component/projectile.go
package component

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
)

// Bullet представляет летящий снаряд.
type Bullet struct {
	Body
	Damage     int
	Speed      float64
	FromPlayer bool
	Spent      bool // помечен к удалению в конце шага
}

// NewBullet создаёт снаряд, левый верхний угол которого совпадает с центром стрелка.
func NewBullet(id types.EntityID, x, y float64, facing Direction, damage int, fromPlayer bool) *Bullet {
	return &Bullet{
		Body: Body{
			ID:     id,
			X:      x,
			Y:      y,
			Width:  config.BulletSize,
			Height: config.BulletSize,
			Facing: facing,
		},
		Damage:     damage,
		Speed:      config.BulletSpeed,
		FromPlayer: fromPlayer,
	}
}

// Advance сдвигает снаряд на speed * dt по направлению полёта
func (b *Bullet) Advance(dt float64) {
	vx, vy := b.Facing.Vector()
	distance := b.Speed * dt
	b.X += vx * distance
	b.Y += vy * distance
}

// OutOfBounds проверяет, вышел ли левый верхний угол снаряда за пределы area
func (b *Bullet) OutOfBounds(area Rect) bool {
	return b.X < area.X || b.X > area.X+area.W ||
		b.Y < area.Y || b.Y > area.Y+area.H
}

func (b *Bullet) View() View {
	return View{
		ID:         b.ID,
		Kind:       KindBullet,
		X:          b.X,
		Y:          b.Y,
		W:          b.Width,
		H:          b.Height,
		Facing:     b.Facing,
		FromPlayer: b.FromPlayer,
	}
}
