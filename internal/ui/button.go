// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect      image.Rectangle
	Text      string
	TextColor color.Color
	BgColor   color.Color
	Disabled  bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, bg color.Color) *Button {
	return &Button{
		Rect:      rect,
		Text:      label,
		TextColor: color.White,
		BgColor:   bg,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked сообщает о клике по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку с текстом по центру.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.BgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, b.TextColor, false)

	width := font.MeasureString(face, b.Text).Ceil()
	height := face.Metrics().Ascent.Ceil()
	tx := b.Rect.Min.X + (b.Rect.Dx()-width)/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+height)/2
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}
