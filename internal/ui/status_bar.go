// internal/ui/status_bar.go
package ui

import (
	"fmt"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	statusPadding    = 10
	statusLineHeight = 22
	expBarHeight     = 8
)

// StatusBar отображает показатели игрока слева от карты.
type StatusBar struct {
	Width, Height float32
	face          font.Face
}

func NewStatusBar(width, height float32, face font.Face) *StatusBar {
	return &StatusBar{Width: width, Height: height, face: face}
}

// Lines возвращает строки строки состояния для снимка уровня
func (s *StatusBar) Lines(snap component.Snapshot) []string {
	p := snap.Player
	return []string{
		fmt.Sprintf("Level %d", snap.LevelID),
		fmt.Sprintf("Health: %d/%d", p.Health, p.MaxHealth),
		fmt.Sprintf("Rank: %d", p.Level),
		fmt.Sprintf("Exp: %d/%d", p.Exp, p.ExpToLevel),
		fmt.Sprintf("Attack: %d", p.Attack),
		fmt.Sprintf("Bullets: %d", p.BulletCount),
		fmt.Sprintf("Time: %.1fs", snap.Time),
	}
}

func (s *StatusBar) Draw(screen *ebiten.Image, snap component.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, s.Width, s.Height, config.StatusBarColor, false)
	vector.StrokeLine(screen, s.Width, 0, s.Width, s.Height, 2, config.DividerColor, false)

	y := statusPadding + statusLineHeight
	for _, line := range s.Lines(snap) {
		text.Draw(screen, line, s.face, statusPadding, y, config.TextLightColor)
		y += statusLineHeight
	}

	// полоса опыта под текстом
	barWidth := s.Width - 2*statusPadding
	vector.StrokeRect(screen, statusPadding, float32(y), barWidth, expBarHeight, 1, config.TextLightColor, false)
	if snap.Player.ExpToLevel > 0 {
		ratio := min(float32(snap.Player.Exp)/float32(snap.Player.ExpToLevel), 1)
		vector.DrawFilledRect(screen, statusPadding+1, float32(y)+1, (barWidth-2)*ratio, expBarHeight-2, config.DividerColor, false)
	}
}
