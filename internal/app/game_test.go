package app

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/gridmap"
)

type counter map[event.EventType]int

func (c counter) OnEvent(e event.Event) {
	c[e.Type]++
}

func newPlayerWorld(size int) *entity.World {
	w := entity.NewWorld(size, config.TileSize)
	x, y := StartCell(size).TopLeft(config.TileSize)
	w.Player = component.NewPlayer(w.NewEntity(), x, y)
	return w
}

// newTestGame строит пустой уровень 6x6 с игроком в (120, 120)
func newTestGame(t *testing.T) (*Game, counter) {
	t.Helper()
	level := defs.LevelDefinition{ID: 1, GridSize: 6}
	g := newGame(level, newPlayerWorld(level.GridSize), utils.NewPRNGService(1))
	events := counter{}
	for _, typ := range []event.EventType{event.LevelCompleted, event.GameOver, event.EnemyDestroyed, event.ShotFired} {
		g.Subscribe(typ, events)
	}
	return g, events
}

func addEnemy(t *testing.T, g *Game, kind defs.EnemyKind, row, col int) *component.Enemy {
	t.Helper()
	def, ok := defaultLibrary(t).Enemy(kind)
	if !ok {
		t.Fatalf("unknown enemy kind %q", kind)
	}
	x, y := gridmap.Cell{Row: row, Col: col}.TopLeft(config.TileSize)
	e := component.NewEnemy(g.World.NewEntity(), x, y, def)
	g.World.Enemies = append(g.World.Enemies, e)
	return e
}

func TestKillLastEnemyCompletesLevelOnce(t *testing.T) {
	g, events := newTestGame(t)
	addEnemy(t, g, defs.EnemyFixed, 0, 3)

	g.Update(0.05, input.Intent{Shoot: true})
	for i := 0; i < 40; i++ {
		g.Update(0.05, input.Intent{})
	}

	if events[event.EnemyDestroyed] != 1 {
		t.Fatalf("expected enemy to be destroyed, got %d events", events[event.EnemyDestroyed])
	}
	if events[event.LevelCompleted] != 1 {
		t.Errorf("expected exactly one LevelCompleted, got %d", events[event.LevelCompleted])
	}
	if g.World.Phase != component.PhaseLevelComplete {
		t.Errorf("expected level complete phase, got %v", g.World.Phase)
	}
	if g.World.Player.Exp != 1 {
		t.Errorf("expected 1 exp for a fixed enemy, got %d", g.World.Player.Exp)
	}
}

func TestUpdateIsNoOpAfterLevelEnds(t *testing.T) {
	g, events := newTestGame(t)
	g.Update(0.1, input.Intent{})
	if events[event.LevelCompleted] != 1 {
		t.Fatalf("expected empty level to complete, got %d", events[event.LevelCompleted])
	}
	before := g.World.GameTime
	px := g.World.Player.X

	g.Update(0.1, input.Intent{DX: 1, Shoot: true})

	if g.World.GameTime != before {
		t.Error("expected game clock to stop after the level ended")
	}
	if g.World.Player.X != px || len(g.World.Bullets) != 0 {
		t.Error("expected no movement or shooting after the level ended")
	}
	if events[event.LevelCompleted] != 1 {
		t.Errorf("expected LevelCompleted to stay at 1, got %d", events[event.LevelCompleted])
	}
}

func TestGameOverOnceWithSimultaneousHits(t *testing.T) {
	g, events := newTestGame(t)
	addEnemy(t, g, defs.EnemyFixed, 0, 0)
	g.World.Player.Value = 1
	p := g.World.Player
	g.World.Bullets = append(g.World.Bullets,
		component.NewBullet(g.World.NewEntity(), p.X+5, p.Y+5, component.Up, 1, false),
		component.NewBullet(g.World.NewEntity(), p.X+20, p.Y+20, component.Up, 1, false),
		component.NewBullet(g.World.NewEntity(), p.X+30, p.Y+30, component.Up, 1, false),
	)

	g.Update(0.001, input.Intent{})
	g.Update(0.001, input.Intent{})

	if events[event.GameOver] != 1 {
		t.Errorf("expected exactly one GameOver, got %d", events[event.GameOver])
	}
	if events[event.LevelCompleted] != 0 {
		t.Errorf("expected no LevelCompleted after game over, got %d", events[event.LevelCompleted])
	}
	if p.Value > 0 {
		t.Errorf("expected player health at or below zero, got %d", p.Value)
	}
}

func TestShootIntentSpawnsVolley(t *testing.T) {
	g, events := newTestGame(t)
	addEnemy(t, g, defs.EnemyFixed, 5, 5)
	g.World.Player.BulletCount = 2
	g.World.Player.Facing = component.Left

	g.Update(0.001, input.Intent{Shoot: true})

	var bullets []component.View
	for _, v := range g.Snapshot().Entities {
		if v.Kind == component.KindBullet {
			bullets = append(bullets, v)
		}
	}
	if len(bullets) != 2 {
		t.Fatalf("expected 2 bullets in snapshot, got %d", len(bullets))
	}
	for _, b := range bullets {
		if !b.FromPlayer || b.Facing != component.Left {
			t.Errorf("unexpected bullet %+v", b)
		}
	}
	if events[event.ShotFired] != 1 {
		t.Errorf("expected one ShotFired, got %d", events[event.ShotFired])
	}
}

func TestSnapshotReportsPlayerStats(t *testing.T) {
	g, _ := newTestGame(t)
	addEnemy(t, g, defs.EnemyHeavy, 0, 0)
	snap := g.Snapshot()

	if snap.LevelID != 1 || snap.GridSize != 6 || snap.TileSize != config.TileSize {
		t.Errorf("unexpected level info %+v", snap)
	}
	want := component.PlayerStats{Health: 5, MaxHealth: 5, Attack: 1, BulletCount: 1, ExpToLevel: 3, Level: 1}
	if snap.Player != want {
		t.Errorf("expected %+v, got %+v", want, snap.Player)
	}
	if len(snap.Entities) != 2 {
		t.Errorf("expected enemy and player views, got %d", len(snap.Entities))
	}
}

func TestPlayerWalksAroundObstacle(t *testing.T) {
	g, _ := newTestGame(t)
	addEnemy(t, g, defs.EnemyFixed, 5, 5)
	cell := gridmap.Cell{Row: 3, Col: 4}
	_ = g.World.Grid.MarkBlocked(cell)
	g.World.Obstacles = append(g.World.Obstacles, component.NewObstacle(g.World.NewEntity(), cell))

	g.Update(0.2, input.Intent{DX: 1})
	if g.World.Player.X != 120 {
		t.Fatalf("expected move into obstacle to be rejected, player at x=%v", g.World.Player.X)
	}
	g.Update(0.2, input.Intent{DY: -1})
	if g.World.Player.Y != 80 {
		t.Errorf("expected step up to y=80, got %v", g.World.Player.Y)
	}
}
