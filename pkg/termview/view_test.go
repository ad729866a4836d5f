package termview

import (
	"strings"
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/input"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func TestDrawGamePlacesEntities(t *testing.T) {
	screen := newScreen(t)
	snap := component.Snapshot{
		LevelID:  1,
		GridSize: 6,
		TileSize: 40,
		Player:   component.PlayerStats{Health: 5, MaxHealth: 5, ExpToLevel: 3, Level: 1, Attack: 1, BulletCount: 1},
		Entities: []component.View{
			{Kind: component.KindObstacle, X: 0, Y: 0, W: 36, H: 36, Health: 3, MaxHealth: 3, HasHealth: true},
			{Kind: component.KindEnemy, EnemyKind: defs.EnemyHeavy, X: 200, Y: 0, W: 40, H: 40, Facing: component.Left},
			{Kind: component.KindPlayer, X: 120, Y: 120, W: 40, H: 40, Facing: component.Up},
			{Kind: component.KindBullet, X: 138, Y: 60, W: 4, H: 4, FromPlayer: true},
		},
	}

	New(screen).DrawGame(snap)

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '#'},
		{10, 0, 'H'},
		{11, 0, '<'},
		{6, 3, '@'},
		{7, 3, '^'},
		{6, 1, '*'},
		{2, 5, '.'},
	}
	for _, tt := range tests {
		if got := runeAt(screen, tt.x, tt.y); got != tt.want {
			t.Errorf("(%d, %d): expected %q, got %q", tt.x, tt.y, tt.want, got)
		}
	}
	if status := rowText(screen, 1, 40); !strings.Contains(status, "Health: 5/5") {
		t.Errorf("expected health in status column, got %q", status)
	}
}

func TestDrawMenuMarksLockedLevels(t *testing.T) {
	screen := newScreen(t)
	New(screen).DrawMenu(3, 1, "game over")

	if row := rowText(screen, 2, 30); strings.Contains(row, "locked") {
		t.Errorf("expected level 1 open, got %q", row)
	}
	if row := rowText(screen, 3, 30); !strings.Contains(row, "Level 2 (locked)") {
		t.Errorf("expected level 2 locked, got %q", row)
	}
	if row := rowText(screen, 6, 30); !strings.Contains(row, "game over") {
		t.Errorf("expected outcome message, got %q", row)
	}
}

func TestKeyIntent(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		inMenu bool
		want   input.Intent
		quit   bool
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), false, input.Intent{DY: -1}, false},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), false, input.Intent{DX: 1}, false},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), false, input.Intent{Shoot: true}, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false, input.Intent{Shoot: true}, false},
		{"escape in play", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false, input.Intent{Back: true}, false},
		{"escape in menu", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, input.Intent{}, true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), true, input.Intent{SelectLevel: 2}, false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false, input.Intent{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := KeyIntent(tt.ev, tt.inMenu)
			if got != tt.want || quit != tt.quit {
				t.Errorf("expected %+v quit=%v, got %+v quit=%v", tt.want, tt.quit, got, quit)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	acc := Merge(input.Intent{}, input.Intent{DX: 1})
	acc = Merge(acc, input.Intent{Shoot: true})
	acc = Merge(acc, input.Intent{DY: -1})
	if acc.DX != 0 || acc.DY != -1 || !acc.Shoot {
		t.Errorf("unexpected merged intent %+v", acc)
	}
}
