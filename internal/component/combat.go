package component

// Health - компонент здоровья
type Health struct {
	Value int
	Max   int
}

func NewHealth(value int) Health {
	return Health{Value: value, Max: value}
}

// TakeDamage вычитает урон и сообщает, уничтожена ли сущность (здоровье <= 0).
// Здоровье не обрезается нулём.
func (h *Health) TakeDamage(amount int) bool {
	h.Value -= amount
	return h.Value <= 0
}

func (h *Health) Alive() bool {
	return h.Value > 0
}

// Fraction возвращает долю оставшегося здоровья в диапазоне [0, 1]
func (h *Health) Fraction() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return float64(h.Value) / float64(h.Max)
}

// Cooldown - ограничитель частоты действий по игровым часам (секунды).
// Свежий Cooldown готов сразу.
type Cooldown struct {
	Duration float64
	LastAt   float64
}

func NewCooldown(duration float64) Cooldown {
	return Cooldown{Duration: duration, LastAt: -duration}
}

func (c *Cooldown) Ready(now float64) bool {
	return now-c.LastAt >= c.Duration
}

func (c *Cooldown) Trigger(now float64) {
	c.LastAt = now
}
