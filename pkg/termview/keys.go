// pkg/termview/keys.go
package termview

import (
	"go-arena-shooter/internal/input"

	"github.com/gdamore/tcell/v2"
)

// KeyIntent переводит нажатие клавиши в намерение. В терминале нет событий
// отпускания, поэтому каждое нажатие даёт один шаг. quit сообщает о выходе из программы.
func KeyIntent(ev *tcell.EventKey, inMenu bool) (intent input.Intent, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return intent, true
	case tcell.KeyEscape:
		if inMenu {
			return intent, true
		}
		intent.Back = true
	case tcell.KeyUp:
		intent.DY = -1
	case tcell.KeyDown:
		intent.DY = 1
	case tcell.KeyLeft:
		intent.DX = -1
	case tcell.KeyRight:
		intent.DX = 1
	case tcell.KeyEnter:
		intent.Shoot = true
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'w', 'W':
			intent.DY = -1
		case 's', 'S':
			intent.DY = 1
		case 'a', 'A':
			intent.DX = -1
		case 'd', 'D':
			intent.DX = 1
		case ' ':
			intent.Shoot = true
		case 'q', 'Q':
			if inMenu {
				return intent, true
			}
		default:
			if r >= '1' && r <= '9' {
				intent.SelectLevel = int(r - '0')
			}
		}
	}
	return intent, false
}

// Merge объединяет намерения, накопленные между кадрами.
// Последнее направление побеждает, кнопки складываются.
func Merge(acc, next input.Intent) input.Intent {
	if next.Moving() {
		acc.DX, acc.DY = next.DX, next.DY
	}
	acc.Shoot = acc.Shoot || next.Shoot
	acc.Back = acc.Back || next.Back
	if next.SelectLevel != 0 {
		acc.SelectLevel = next.SelectLevel
	}
	return acc
}
