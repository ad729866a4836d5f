// pkg/termview/view.go
package termview

import (
	"fmt"
	"image/color"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/pkg/gridmap"
	"go-arena-shooter/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// CellWidth - столбцов терминала на одну клетку карты
const CellWidth = 2

// View рисует снимок уровня символами: одна клетка карты на CellWidth столбцов.
type View struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *View {
	return &View{screen: screen}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var facingGlyphs = map[component.Direction]rune{
	component.Up:    '^',
	component.Right: '>',
	component.Down:  'v',
	component.Left:  '<',
}

var enemyGlyphs = map[defs.EnemyKind]rune{
	defs.EnemyFixed:  'F',
	defs.EnemyMedium: 'M',
	defs.EnemyHeavy:  'H',
}

// Glyph возвращает символ и стиль сущности
func Glyph(v component.View) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch v.Kind {
	case component.KindObstacle:
		return '#', style.Foreground(toTcell(render.ObstacleColor(v.HealthFraction()))).Background(tcell.ColorGray)
	case component.KindEnemy:
		glyph, ok := enemyGlyphs[v.EnemyKind]
		if !ok {
			glyph = 'E'
		}
		return glyph, style.Foreground(toTcell(render.EnemyColor(v.EnemyKind))).Bold(true)
	case component.KindPlayer:
		return '@', style.Foreground(tcell.ColorGreen).Bold(true)
	case component.KindBullet:
		if v.FromPlayer {
			return '*', style.Foreground(tcell.ColorLime)
		}
		return '*', style.Foreground(tcell.ColorRed)
	}
	return '?', style
}

// DrawGame рисует карту и строки состояния справа от неё
func (v *View) DrawGame(snap component.Snapshot) {
	v.screen.Clear()
	dots := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for row := 0; row < snap.GridSize; row++ {
		for col := 0; col < snap.GridSize; col++ {
			v.screen.SetContent(col*CellWidth, row, '.', nil, dots)
		}
	}

	for _, e := range snap.Entities {
		cx, cy := e.X+e.W/2, e.Y+e.H/2
		cell := gridmap.CellAt(cx, cy, snap.TileSize)
		if cell.Row < 0 || cell.Row >= snap.GridSize || cell.Col < 0 || cell.Col >= snap.GridSize {
			continue
		}
		glyph, style := Glyph(e)
		x := cell.Col * CellWidth
		v.screen.SetContent(x, cell.Row, glyph, nil, style)
		if e.Kind == component.KindPlayer || e.Kind == component.KindEnemy {
			v.screen.SetContent(x+1, cell.Row, facingGlyphs[e.Facing], nil, style)
		}
	}

	p := snap.Player
	healthStyle := tcell.StyleDefault.Foreground(toTcell(render.HealthColor(float64(p.Health) / float64(max(p.MaxHealth, 1)))))
	left := snap.GridSize*CellWidth + 2
	v.drawText(left, 0, fmt.Sprintf("Level %d", snap.LevelID), tcell.StyleDefault.Bold(true))
	v.drawText(left, 1, fmt.Sprintf("Health: %d/%d", p.Health, p.MaxHealth), healthStyle)
	v.drawText(left, 2, fmt.Sprintf("Rank: %d  Exp: %d/%d", p.Level, p.Exp, p.ExpToLevel), tcell.StyleDefault)
	v.drawText(left, 3, fmt.Sprintf("Attack: %d  Bullets: %d", p.Attack, p.BulletCount), tcell.StyleDefault)
	v.drawText(left, 5, "wasd/arrows move, space shoots, esc leaves", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	v.screen.Show()
}

// DrawMenu рисует список уровней; закрытые отмечены замком
func (v *View) DrawMenu(count, unlocked int, message string) {
	v.screen.Clear()
	v.drawText(0, 0, "Select level:", tcell.StyleDefault.Bold(true))
	for i := 1; i <= count; i++ {
		label := fmt.Sprintf("[%d] Level %d", i, i)
		style := tcell.StyleDefault
		if i > unlocked {
			label += " (locked)"
			style = style.Foreground(tcell.ColorDarkGray)
		}
		v.drawText(2, i+1, label, style)
	}
	if message != "" {
		v.drawText(0, count+3, message, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	v.drawText(0, count+5, "press 1-3 to play, q to quit", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
