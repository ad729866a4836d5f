package component

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Body
	Health
	Kind      defs.EnemyKind
	Attack    int
	Speed     float64 // пикселей в секунду
	ExpReward int
	Shot      Cooldown
}

func NewEnemy(id types.EntityID, x, y float64, def defs.EnemyDefinition) *Enemy {
	return &Enemy{
		Body: Body{
			ID:     id,
			X:      x,
			Y:      y,
			Width:  config.EntitySize,
			Height: config.EntitySize,
			Facing: Up,
		},
		Health:    NewHealth(def.Health),
		Kind:      def.Kind,
		Attack:    def.Attack,
		Speed:     def.Speed,
		ExpReward: def.Exp,
		Shot:      NewCooldown(config.EnemyShootCooldown),
	}
}

// Stationary сообщает, что враг никогда не двигается
func (e *Enemy) Stationary() bool {
	return e.Kind == defs.EnemyFixed || e.Speed == 0
}

// Update двигает врага к игроку и пытается выстрелить.
// Возвращает новый снаряд или nil.
func (e *Enemy) Update(dt, now float64, player *Player, obstacles []*Obstacle, area Rect, ids IDSource) *Bullet {
	if !e.Stationary() {
		e.Chase(dt, player, obstacles, area)
	}
	return e.TryShoot(now, player, ids)
}

// Chase делает жадный шаг к игроку по оси с большим расхождением
// (при равенстве - по вертикали) и поворачивает врага по ходу движения.
func (e *Enemy) Chase(dt float64, player *Player, obstacles []*Obstacle, area Rect) bool {
	dx := player.X - e.X
	dy := player.Y - e.Y
	step := e.Speed * dt

	e.Facing = DirectionFromDelta(dx, dy)
	vx, vy := e.Facing.Vector()
	return e.TryMove(vx*step, vy*step, area, obstacles)
}

// TryShoot стреляет по игроку, если тот на одной линии с врагом
// (с допуском в ширину/высоту врага) и перезарядка закончилась.
func (e *Enemy) TryShoot(now float64, player *Player, ids IDSource) *Bullet {
	if !e.Shot.Ready(now) {
		return nil
	}

	alignedX := math.Abs(e.X-player.X) < e.Width
	alignedY := math.Abs(e.Y-player.Y) < e.Height
	if !alignedX && !alignedY {
		return nil
	}

	if alignedX {
		if player.Y < e.Y {
			e.Facing = Up
		} else {
			e.Facing = Down
		}
	} else {
		if player.X < e.X {
			e.Facing = Left
		} else {
			e.Facing = Right
		}
	}

	e.Shot.Trigger(now)
	cx, cy := e.Center()
	return NewBullet(ids.NewEntity(), cx, cy, e.Facing, e.Attack, false)
}

func (e *Enemy) View() View {
	return View{
		ID:        e.ID,
		Kind:      KindEnemy,
		EnemyKind: e.Kind,
		X:         e.X,
		Y:         e.Y,
		W:         e.Width,
		H:         e.Height,
		Facing:    e.Facing,
		Health:    e.Value,
		MaxHealth: e.Max,
		HasHealth: true,
	}
}
