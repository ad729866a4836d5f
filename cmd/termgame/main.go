// cmd/termgame/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/state"
	"go-arena-shooter/pkg/termview"
	"go-arena-shooter/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

var (
	seedFlag    = flag.Int64("seed", 0, "map generation seed (0 = random)")
	enemiesFlag = flag.String("enemies", "", "path to enemy definitions YAML")
	levelsFlag  = flag.String("levels", "", "path to level definitions YAML")
	logFlag     = flag.String("log", "termgame.log", "log file (the terminal is used for drawing)")
)

func loadLibrary() (*defs.Library, error) {
	if *enemiesFlag == "" && *levelsFlag == "" {
		return defs.DefaultLibrary()
	}
	return defs.LoadLibrary(*enemiesFlag, *levelsFlag)
}

func menuMessage(session *state.Session) string {
	if err := session.Err(); err != nil {
		return err.Error()
	}
	outcome, level := session.LastOutcome()
	if outcome == state.OutcomeNone {
		return ""
	}
	return fmt.Sprintf("Level %d: %s", level, outcome)
}

func main() {
	flag.Parse()

	logFile, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	library, err := loadLibrary()
	if err != nil {
		log.Fatalf("failed to load definitions: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	session := state.NewSession(library, *seedFlag, nil)
	view := termview.New(screen)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	var pending input.Intent
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				intent, quit := termview.KeyIntent(ev, session.InMenu())
				if quit {
					return
				}
				pending = termview.Merge(pending, intent)
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			deltaTime := utils.Clamp(now.Sub(last).Seconds(), 0, config.MaxDeltaTime)
			last = now

			session.Update(deltaTime, pending)
			pending = input.Intent{}

			if game := session.Game(); game != nil {
				view.DrawGame(game.Snapshot())
			} else {
				view.DrawMenu(session.LevelCount(), session.Unlocked(), menuMessage(session))
			}
		}
	}
}
