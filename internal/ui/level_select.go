// internal/ui/level_select.go
package ui

import (
	"fmt"
	"image"

	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// LevelSelect - экран выбора уровня: кнопка на каждый уровень,
// закрытые уровни неактивны.
type LevelSelect struct {
	Buttons []*Button
	Message string
	face    font.Face
}

// NewLevelSelect раскладывает count кнопок столбиком по центру экрана
func NewLevelSelect(count, screenWidth, screenHeight int, face font.Face) *LevelSelect {
	total := count*config.LevelButtonHeight + (count-1)*config.LevelButtonSpacing
	x := (screenWidth - config.LevelButtonWidth) / 2
	y := (screenHeight - total) / 2

	buttons := make([]*Button, 0, count)
	for i := 0; i < count; i++ {
		top := y + i*(config.LevelButtonHeight+config.LevelButtonSpacing)
		rect := image.Rect(x, top, x+config.LevelButtonWidth, top+config.LevelButtonHeight)
		buttons = append(buttons, NewButton(rect, fmt.Sprintf("Level %d", i+1), config.OpenButtonColor))
	}
	return &LevelSelect{Buttons: buttons, face: face}
}

// SetUnlocked включает кнопки уровней 1..unlocked
func (l *LevelSelect) SetUnlocked(unlocked int) {
	for i, b := range l.Buttons {
		b.Disabled = i >= unlocked
		if b.Disabled {
			b.BgColor = config.LockedButtonColor
		} else {
			b.BgColor = config.OpenButtonColor
		}
	}
}

// LevelAt возвращает номер уровня под курсором или 0
func (l *LevelSelect) LevelAt(x, y int) int {
	for i, b := range l.Buttons {
		if b.IsClicked(x, y) {
			return i + 1
		}
	}
	return 0
}

func (l *LevelSelect) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for _, b := range l.Buttons {
		b.Draw(screen, l.face)
	}
	if l.Message == "" || len(l.Buttons) == 0 {
		return
	}
	width := font.MeasureString(l.face, l.Message).Ceil()
	x := l.Buttons[0].Rect.Min.X + (config.LevelButtonWidth-width)/2
	y := l.Buttons[0].Rect.Min.Y - config.LevelButtonSpacing
	text.Draw(screen, l.Message, l.face, x, y, config.TextLightColor)
}
