// internal/input/intent.go
package input

// Intent - намерение игрока за один кадр, собранное фронтендом
// (клавиатура, мышь, терминал).
type Intent struct {
	DX, DY      int  // шаг по сетке, каждая компонента в {-1, 0, 1}
	Shoot       bool // фронт нажатия, а не удержание
	Back        bool // выход из уровня в меню
	SelectLevel int  // 0 - нет выбора
}

// Normalized приводит вектор движения к одному из 8 направлений или нулю
func (i Intent) Normalized() Intent {
	i.DX = sign(i.DX)
	i.DY = sign(i.DY)
	return i
}

// Moving сообщает, есть ли намерение двигаться
func (i Intent) Moving() bool {
	return i.DX != 0 || i.DY != 0
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// KeyState - состояние клавиш направления на текущем кадре.
type KeyState struct {
	Up, Down, Left, Right bool
	Shoot                 bool
	Back                  bool
}

// Intent строит намерение из клавиш. Одновременно учитывается только одна
// клавиша направления с приоритетом вверх, вниз, влево, вправо.
func (k KeyState) Intent() Intent {
	intent := Intent{Shoot: k.Shoot, Back: k.Back}
	switch {
	case k.Up:
		intent.DY = -1
	case k.Down:
		intent.DY = 1
	case k.Left:
		intent.DX = -1
	case k.Right:
		intent.DX = 1
	}
	return intent
}
