// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/progress"
	"go-yarn-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	dataDir := flag.String("data", config.DefaultDataDir, "directory with layers, projectiles, towers and levels")
	watch := flag.Bool("watch", false, "reload the data directory when it changes")
	level := flag.String("level", "", "start this level directly instead of showing the menu")
	save := flag.Bool("save", true, "keep run statistics between sessions")
	flag.Parse()

	lib, err := defs.Load(*dataDir)
	if err != nil {
		log.Fatal(err)
	}

	var store *progress.Store
	if *save {
		m, err := gdata.Open(gdata.Config{AppName: config.SaveAppName})
		if err != nil {
			log.Printf("Saving disabled: %v", err)
		}
		store = progress.NewStore(m)
	}

	opts := state.Options{Library: lib, Level: *level, Progress: store}
	if *watch {
		opts.WatchDir = *dataDir
	}

	sm := state.NewStateMachine()
	if *level != "" {
		gs, err := state.NewGameState(sm, opts)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Yarn Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
