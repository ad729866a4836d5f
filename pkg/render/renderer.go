// pkg/render/renderer.go
package render

import (
	"image/color"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer рисует снимок уровня. Карта смещена вправо на ширину строки состояния.
type ArenaRenderer struct {
	OffsetX, OffsetY float32
}

func NewArenaRenderer(offsetX, offsetY float32) *ArenaRenderer {
	return &ArenaRenderer{OffsetX: offsetX, OffsetY: offsetY}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap component.Snapshot) {
	r.drawGrid(screen, snap.GridSize, float32(snap.TileSize))
	for _, v := range snap.Entities {
		switch v.Kind {
		case component.KindObstacle:
			r.drawObstacle(screen, v)
		case component.KindEnemy:
			r.drawTank(screen, v, EnemyColor(v.EnemyKind))
		case component.KindPlayer:
			r.drawTank(screen, v, config.PlayerColor)
		case component.KindBullet:
			r.drawBullet(screen, v)
		}
		if v.ShowsHealthBar() {
			r.drawHealthBar(screen, v)
		}
	}
}

func (r *ArenaRenderer) drawGrid(screen *ebiten.Image, size int, tile float32) {
	side := float32(size) * tile
	vector.DrawFilledRect(screen, r.OffsetX, r.OffsetY, side, side, config.BackgroundColor, false)
	for i := 0; i <= size; i++ {
		p := float32(i) * tile
		vector.StrokeLine(screen, r.OffsetX+p, r.OffsetY, r.OffsetX+p, r.OffsetY+side, 1, config.GridLineColor, false)
		vector.StrokeLine(screen, r.OffsetX, r.OffsetY+p, r.OffsetX+side, r.OffsetY+p, 1, config.GridLineColor, false)
	}
}

func (r *ArenaRenderer) drawObstacle(screen *ebiten.Image, v component.View) {
	x, y, w, h := r.rect(v)
	fill := ObstacleColor(v.HealthFraction())
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 2, DarkenColor(config.TextLightColor), true)

	// трещины по мере разрушения
	fraction := v.HealthFraction()
	if fraction <= 2.0/3.0 {
		vector.StrokeLine(screen, x+w*0.3, y, x+w*0.7, y+h, 1, config.TextLightColor, true)
	}
	if fraction <= 1.0/3.0 {
		vector.StrokeLine(screen, x, y+h*0.3, x+w, y+h*0.7, 1, config.TextLightColor, true)
	}
}

// drawTank рисует корпус и ствол по направлению взгляда
func (r *ArenaRenderer) drawTank(screen *ebiten.Image, v component.View, body color.RGBA) {
	x, y, w, h := r.rect(v)
	vector.DrawFilledRect(screen, x+2, y+2, w-4, h-4, body, true)
	vector.StrokeRect(screen, x+2, y+2, w-4, h-4, 1, DarkenColor(body), true)

	cx, cy := x+w/2, y+h/2
	vector.DrawFilledCircle(screen, cx, cy, w/5, config.PlayerAccentColor, true)

	dx, dy := v.Facing.Vector()
	barrel := w / 2
	vector.StrokeLine(screen, cx, cy, cx+float32(dx)*barrel, cy+float32(dy)*barrel, 4, config.PlayerAccentColor, true)
}

func (r *ArenaRenderer) drawBullet(screen *ebiten.Image, v component.View) {
	x, y, w, _ := r.rect(v)
	clr := config.EnemyBulletColor
	if v.FromPlayer {
		clr = config.PlayerBulletColor
	}
	vector.DrawFilledCircle(screen, x+w/2, y+w/2, w/2+1, clr, true)
}

func (r *ArenaRenderer) drawHealthBar(screen *ebiten.Image, v component.View) {
	x, y, w, _ := r.rect(v)
	barY := y - config.HealthBarHeight - config.HealthBarPadding
	fraction := v.HealthFraction()
	vector.DrawFilledRect(screen, x, barY, w, config.HealthBarHeight, config.HealthBarBgColor, false)
	if fraction > 0 {
		vector.DrawFilledRect(screen, x, barY, w*float32(fraction), config.HealthBarHeight, HealthColor(fraction), false)
	}
}

func (r *ArenaRenderer) rect(v component.View) (x, y, w, h float32) {
	return r.OffsetX + float32(v.X), r.OffsetY + float32(v.Y), float32(v.W), float32(v.H)
}
