package component

// Phase - состояние уровня
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level complete"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Ended сообщает, завершён ли уровень
func (p Phase) Ended() bool {
	return p != PhasePlaying
}
