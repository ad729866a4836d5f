// internal/state/session.go
package state

import (
	"errors"
	"fmt"
	"log"

	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/utils"
)

// ErrLevelLocked возвращается при выборе ещё не открытого уровня.
var ErrLevelLocked = errors.New("level is locked")

// Outcome - чем закончился последний уровень
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCompleted
	OutcomeGameOver
	OutcomeAbandoned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "level complete"
	case OutcomeGameOver:
		return "game over"
	case OutcomeAbandoned:
		return "abandoned"
	}
	return ""
}

// GameFactory создаёт запущенный уровень
type GameFactory func(levelID int, library *defs.Library, rng *utils.PRNGService) (interfaces.Game, error)

// NewAppGame - GameFactory по умолчанию
func NewAppGame(levelID int, library *defs.Library, rng *utils.PRNGService) (interfaces.Game, error) {
	g, err := app.NewGame(levelID, library, rng)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Session - контроллер сессии: прогресс открытия уровней, выбор уровня и
// переходы между меню и игрой. Один уровень активен не больше одного раза.
type Session struct {
	sm          *StateMachine
	library     *defs.Library
	newGame     GameFactory
	seed        int64
	starts      int64
	unlocked    int
	game        interfaces.Game
	lastOutcome Outcome
	lastLevel   int
	lastErr     error
}

// NewSession создаёт сессию в меню выбора уровня. Открыт только первый уровень.
// Ненулевой seed делает генерацию карт воспроизводимой.
func NewSession(library *defs.Library, seed int64, newGame GameFactory) *Session {
	if newGame == nil {
		newGame = NewAppGame
	}
	s := &Session{
		sm:       NewStateMachine(),
		library:  library,
		newGame:  newGame,
		seed:     seed,
		unlocked: 1,
	}
	s.sm.SetState(NewMenuState(s))
	return s
}

func (s *Session) Update(deltaTime float64, intent input.Intent) {
	s.sm.Update(deltaTime, intent)
}

// Game возвращает активный уровень или nil в меню
func (s *Session) Game() interfaces.Game {
	return s.game
}

func (s *Session) InMenu() bool {
	_, ok := s.sm.Current().(*MenuState)
	return ok
}

func (s *Session) LevelCount() int {
	return s.library.LevelCount()
}

func (s *Session) Unlocked() int {
	return s.unlocked
}

func (s *Session) IsUnlocked(levelID int) bool {
	return levelID >= 1 && levelID <= s.unlocked
}

// LastOutcome возвращает исход и номер последнего сыгранного уровня
func (s *Session) LastOutcome() (Outcome, int) {
	return s.lastOutcome, s.lastLevel
}

// Err возвращает ошибку последнего выбора уровня
func (s *Session) Err() error {
	return s.lastErr
}

// SelectLevel запускает уровень, если он существует и открыт.
func (s *Session) SelectLevel(levelID int) error {
	s.lastErr = s.selectLevel(levelID)
	return s.lastErr
}

func (s *Session) selectLevel(levelID int) error {
	if _, err := s.library.Level(levelID); err != nil {
		return err
	}
	if !s.IsUnlocked(levelID) {
		return fmt.Errorf("%w: level %d (unlocked up to %d)", ErrLevelLocked, levelID, s.unlocked)
	}

	game, err := s.newGame(levelID, s.library, s.nextRng())
	if err != nil {
		return err
	}
	s.game = game
	s.sm.SetState(NewPlayState(s, game))
	return nil
}

func (s *Session) nextRng() *utils.PRNGService {
	if s.seed == 0 {
		return utils.NewPRNGService(0)
	}
	s.starts++
	return utils.NewPRNGService(s.seed + s.starts - 1)
}

// finishLevel выбрасывает уровень и возвращает сессию в меню
func (s *Session) finishLevel(levelID int, outcome Outcome) {
	if outcome == OutcomeCompleted {
		s.unlockAfter(levelID)
	}
	s.lastOutcome = outcome
	s.lastLevel = levelID
	s.game = nil
	s.sm.SetState(NewMenuState(s))
}

// unlockAfter открывает уровень, следующий за пройденным
func (s *Session) unlockAfter(levelID int) {
	next := min(levelID+1, s.library.LevelCount())
	if next > s.unlocked {
		s.unlocked = next
		log.Printf("Level %d unlocked", next)
	}
}
