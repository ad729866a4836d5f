package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/pkg/gridmap"
)

type fakeLevel int

func (f fakeLevel) LevelID() int {
	return int(f)
}

type fixedRand struct {
	value int
}

func (f fixedRand) Intn(n int) int {
	return f.value % n
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld(size int) (*entity.World, *event.Dispatcher, *eventLog) {
	w := entity.NewWorld(size, config.TileSize)
	d := event.NewDispatcher()
	rec := &eventLog{}
	for _, t := range []event.EventType{
		event.LevelCompleted, event.GameOver, event.EnemyDestroyed,
		event.ObstacleDestroyed, event.PlayerDamaged, event.PlayerLevelUp, event.ShotFired,
	} {
		d.Subscribe(t, rec)
	}
	return w, d, rec
}

func placeObstacle(w *entity.World, row, col int) *component.Obstacle {
	cell := gridmap.Cell{Row: row, Col: col}
	_ = w.Grid.MarkBlocked(cell)
	o := component.NewObstacle(w.NewEntity(), cell)
	w.Obstacles = append(w.Obstacles, o)
	return o
}

func placeEnemy(w *entity.World, kind defs.EnemyKind, row, col int) *component.Enemy {
	lib, err := defs.DefaultLibrary()
	if err != nil {
		panic(err)
	}
	def, _ := lib.Enemy(kind)
	x, y := gridmap.Cell{Row: row, Col: col}.TopLeft(config.TileSize)
	e := component.NewEnemy(w.NewEntity(), x, y, def)
	w.Enemies = append(w.Enemies, e)
	return e
}
