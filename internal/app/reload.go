// internal/app/reload.go
package app

import (
	"log"

	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/event"
)

type hotReload struct {
	dir     string
	watcher *defs.Watcher
}

// EnableHotReload reloads the game data from dir whenever a file in it changes.
func (g *Game) EnableHotReload(dir string) error {
	w, err := defs.NewWatcher(dir)
	if err != nil {
		return err
	}
	g.hotReload = &hotReload{dir: dir, watcher: w}
	log.Printf("Game: watching %s for data changes", dir)
	return nil
}

func (g *Game) pollReload() {
	if g.hotReload == nil {
		return
	}
	changed, err := g.hotReload.watcher.Poll()
	if err != nil {
		log.Printf("Game: data watcher: %v", err)
	}
	if !changed {
		return
	}
	lib, err := defs.Load(g.hotReload.dir)
	if err != nil {
		log.Printf("Game: reload failed, keeping the current data: %v", err)
		return
	}
	g.Reload(lib)
}

// Reload swaps in a new library. Live yarns and projectiles keep the data
// they were created with; towers re-resolve their stats at their current
// level, and later waves come from the new level definition. The board is
// not rebuilt.
func (g *Game) Reload(lib *defs.Library) {
	for id, tower := range g.ECS.Towers {
		def, ok := lib.Tower(tower.DefID)
		if !ok {
			log.Printf("Game: tower %q vanished from the data, keeping its old stats", tower.DefID)
			continue
		}
		level := tower.Stats.Level()
		tower.Stats = component.NewStatStack(def)
		tower.Stats.SetLevel(level)
		if r, ok := g.ECS.Renderables[id]; ok {
			r.Color = tower.Stats.Stats().Color
			r.Sprite = tower.Stats.Stats().Sprite
		}
	}

	if level, ok := lib.Level(g.Level.Name); ok {
		if level.Board.Radius != g.Level.Board.Radius || level.Board.Entry != g.Level.Board.Entry || level.Board.Exit != g.Level.Board.Exit {
			log.Printf("Game: board of %s changed, restart the level to use it", level.Name)
		}
		g.Level = level
	} else {
		log.Printf("Game: level %s vanished from the data, keeping its waves", g.Level.Name)
	}

	g.Library = lib
	g.EventDispatcher.Dispatch(event.Event{Type: event.DataReloaded, Data: lib})
}
