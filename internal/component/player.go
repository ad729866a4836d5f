// internal/component/player.go
package component

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
)

// Randomizer - источник случайных чисел для улучшений
type Randomizer interface {
	Intn(n int) int
}

// Upgrade - улучшение, полученное при повышении уровня
type Upgrade int

const (
	UpgradeHealth  Upgrade = iota // лечение до полного и +1 к максимуму
	UpgradeAttack                 // +1 к урону
	UpgradeBullets                // +1 снаряд в залпе
	upgradeCount
)

func (u Upgrade) String() string {
	switch u {
	case UpgradeHealth:
		return "health"
	case UpgradeAttack:
		return "attack"
	case UpgradeBullets:
		return "bullets"
	}
	return "unknown"
}

// Player хранит состояние игрока: тело, здоровье, боевые параметры и опыт.
type Player struct {
	Body
	Health
	Attack      int
	BulletCount int
	Exp         int
	Level       int
	Shot        Cooldown
	Move        Cooldown
}

func NewPlayer(id types.EntityID, x, y float64) *Player {
	return &Player{
		Body: Body{
			ID:     id,
			X:      x,
			Y:      y,
			Width:  config.EntitySize,
			Height: config.EntitySize,
			Facing: Up,
		},
		Health:      NewHealth(config.PlayerStartHealth),
		Attack:      config.PlayerStartAttack,
		BulletCount: config.PlayerStartBullets,
		Level:       1,
		Shot:        NewCooldown(config.PlayerShootCooldown),
		Move:        NewCooldown(config.PlayerMoveDelay),
	}
}

// Shoot выпускает залп из BulletCount снарядов из центра игрока по направлению
// взгляда. Во время перезарядки возвращает nil.
func (p *Player) Shoot(now float64, ids IDSource) []*Bullet {
	if !p.Shot.Ready(now) {
		return nil
	}
	p.Shot.Trigger(now)

	cx, cy := p.Center()
	bullets := make([]*Bullet, 0, p.BulletCount)
	for i := 0; i < p.BulletCount; i++ {
		bullets = append(bullets, NewBullet(ids.NewEntity(), cx, cy, p.Facing, p.Attack, true))
	}
	return bullets
}

// GainExp начисляет опыт. При достижении порога применяется одно повышение
// уровня, а порог вычитается из опыта (остаток сохраняется).
func (p *Player) GainExp(amount int, rng Randomizer) (Upgrade, bool) {
	p.Exp += amount
	if p.Exp < config.ExpPerLevel {
		return 0, false
	}
	upgrade := p.LevelUp(rng)
	p.Exp -= config.ExpPerLevel
	return upgrade, true
}

// LevelUp повышает уровень и применяет случайное улучшение
func (p *Player) LevelUp(rng Randomizer) Upgrade {
	p.Level++
	upgrade := Upgrade(rng.Intn(int(upgradeCount)))
	switch upgrade {
	case UpgradeHealth:
		p.Max++
		p.Value = p.Max
	case UpgradeAttack:
		p.Attack++
	case UpgradeBullets:
		p.BulletCount++
	}
	return upgrade
}

func (p *Player) View() View {
	return View{
		ID:        p.ID,
		Kind:      KindPlayer,
		X:         p.X,
		Y:         p.Y,
		W:         p.Width,
		H:         p.Height,
		Facing:    p.Facing,
		Health:    p.Value,
		MaxHealth: p.Max,
		HasHealth: true,
	}
}

func (p *Player) Stats() PlayerStats {
	return PlayerStats{
		Health:      p.Value,
		MaxHealth:   p.Max,
		Attack:      p.Attack,
		BulletCount: p.BulletCount,
		Exp:         p.Exp,
		ExpToLevel:  config.ExpPerLevel,
		Level:       p.Level,
	}
}
