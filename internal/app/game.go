// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/utils"
)

// Game владеет состоянием одного запущенного уровня: миром, системами
// и диспетчером событий. Создаётся при старте уровня и выбрасывается при выходе.
type Game struct {
	Level            defs.LevelDefinition
	World            *entity.World
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	PlayerSystem     *system.PlayerSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
}

// NewGame строит уровень levelID: ставит игрока в центр сетки,
// генерирует карту и связывает системы.
func NewGame(levelID int, library *defs.Library, rng *utils.PRNGService) (*Game, error) {
	level, err := library.Level(levelID)
	if err != nil {
		return nil, err
	}

	world := entity.NewWorld(level.GridSize, config.TileSize)
	x, y := StartCell(level.GridSize).TopLeft(config.TileSize)
	world.Player = component.NewPlayer(world.NewEntity(), x, y)

	log.Printf("Starting level %d (%dx%d, seed %d)", level.ID, level.GridSize, level.GridSize, rng.Seed())
	if err := GenerateMap(world, level, library, rng); err != nil {
		log.Printf("Map generation failed: %v", err)
		return nil, fmt.Errorf("failed to start level %d: %w", level.ID, err)
	}

	return newGame(level, world, rng), nil
}

// newGame связывает системы с уже заполненным миром
func newGame(level defs.LevelDefinition, world *entity.World, rng *utils.PRNGService) *Game {
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Level:            level,
		World:            world,
		MovementSystem:   system.NewMovementSystem(world),
		CombatSystem:     system.NewCombatSystem(world, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(world, eventDispatcher),
		PlayerSystem:     system.NewPlayerSystem(world, eventDispatcher, rng),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
	}
	g.StateSystem = system.NewStateSystem(world, g, eventDispatcher)
	eventDispatcher.Subscribe(event.EnemyDestroyed, g.PlayerSystem)
	return g
}

func (g *Game) LevelID() int {
	return g.Level.ID
}

// Update продвигает уровень на deltaTime секунд. После победы или
// поражения ничего не делает.
func (g *Game) Update(deltaTime float64, intent input.Intent) {
	if g.World.Phase.Ended() {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.World.GameTime += deltaTime

	g.MovementSystem.Update(intent)
	if intent.Shoot {
		g.CombatSystem.PlayerShoot()
	}
	g.CombatSystem.UpdateEnemies(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.StateSystem.Update()
}

// Snapshot возвращает состояние уровня для отрисовки
func (g *Game) Snapshot() component.Snapshot {
	snap := component.Snapshot{
		LevelID:  g.Level.ID,
		GridSize: g.Level.GridSize,
		TileSize: config.TileSize,
		Phase:    g.World.Phase,
		Time:     g.World.GameTime,
		Entities: g.World.Entities(),
	}
	if g.World.Player != nil {
		snap.Player = g.World.Player.Stats()
	}
	return snap
}

// Subscribe подписывает контроллер сессии на события уровня
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.EventDispatcher.Subscribe(eventType, listener)
}
