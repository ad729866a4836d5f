// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/state"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/pkg/render"
	"go-arena-shooter/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

var (
	seedFlag    = flag.Int64("seed", 0, "map generation seed (0 = random)")
	enemiesFlag = flag.String("enemies", "", "path to enemy definitions YAML")
	levelsFlag  = flag.String("levels", "", "path to level definitions YAML")
)

type AppGame struct {
	session        *state.Session
	renderer       *render.ArenaRenderer
	statusBar      *ui.StatusBar
	levelSelect    *ui.LevelSelect
	lastUpdateTime time.Time
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (a *AppGame) readIntent() input.Intent {
	keys := input.KeyState{
		Up:    anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Shoot: anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace),
		Back:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	intent := keys.Intent()

	if a.session.InMenu() {
		for i, k := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
			if inpututil.IsKeyJustPressed(k) {
				intent.SelectLevel = i + 1
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if level := a.levelSelect.LevelAt(ebiten.CursorPosition()); level != 0 {
				intent.SelectLevel = level
			}
		}
	}
	return intent
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := utils.Clamp(now.Sub(a.lastUpdateTime).Seconds(), 0, config.MaxDeltaTime)
	a.lastUpdateTime = now
	a.session.Update(deltaTime, a.readIntent())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	game := a.session.Game()
	if game == nil {
		a.levelSelect.SetUnlocked(a.session.Unlocked())
		a.levelSelect.Message = a.menuMessage()
		a.levelSelect.Draw(screen)
		return
	}
	screen.Fill(config.BackgroundColor)
	snap := game.Snapshot()
	a.statusBar.Draw(screen, snap)
	a.renderer.Draw(screen, snap)
}

func (a *AppGame) menuMessage() string {
	if err := a.session.Err(); err != nil {
		return err.Error()
	}
	outcome, level := a.session.LastOutcome()
	if outcome == state.OutcomeNone {
		return "Select a level"
	}
	return fmt.Sprintf("Level %d: %s", level, outcome)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flag.Parse()

	var (
		library *defs.Library
		err     error
	)
	if *enemiesFlag != "" || *levelsFlag != "" {
		library, err = defs.LoadLibrary(*enemiesFlag, *levelsFlag)
	} else {
		library, err = defs.DefaultLibrary()
	}
	if err != nil {
		log.Fatalf("failed to load definitions: %v", err)
	}

	face := basicfont.Face7x13
	app := &AppGame{
		session:        state.NewSession(library, *seedFlag, nil),
		renderer:       render.NewArenaRenderer(config.StatusBarWidth, 0),
		statusBar:      ui.NewStatusBar(config.StatusBarWidth, config.ScreenHeight, face),
		levelSelect:    ui.NewLevelSelect(library.LevelCount(), config.ScreenWidth, config.ScreenHeight, face),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Shooter")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
