// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"go-yarn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState lists the levels of the loaded data and the saved progress.
type MenuState struct {
	sm       *StateMachine
	opts     Options
	selected int
	err      string
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	m := &MenuState{sm: sm, opts: opts}
	for i, name := range opts.Library.LevelOrder {
		if name == opts.Level {
			m.selected = i
		}
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	levels := m.opts.Library.LevelOrder
	if len(levels) == 0 {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		m.selected = (m.selected + len(levels) - 1) % len(levels)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		m.selected = (m.selected + 1) % len(levels)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		opts := m.opts
		opts.Level = levels[m.selected]
		gs, err := NewGameState(m.sm, opts)
		if err != nil {
			log.Printf("MenuState: %v", err)
			m.err = err.Error()
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13

	x, y := 100, 100
	text.Draw(screen, "Yarn Defense", face, x, y, config.TextLightColor)
	y += 2 * config.HUDLineHeight

	var best map[string]int
	if m.opts.Progress != nil {
		stats := m.opts.Progress.Stats()
		best = stats.BestWave
		text.Draw(screen, fmt.Sprintf("Runs: %d  Wins: %d  Pops: %d", stats.Runs, stats.Wins, stats.TotalPops), face, x, y, config.TextLightColor)
		y += 2 * config.HUDLineHeight
	}

	for i, name := range m.opts.Library.LevelOrder {
		level := m.opts.Library.Levels[name]
		line := fmt.Sprintf("  %s  (%d waves)", name, len(level.Waves))
		if i == m.selected {
			line = ">" + line[1:]
		}
		if wave, ok := best[name]; ok {
			line += fmt.Sprintf("  best: %d", wave)
		}
		c := config.TextLightColor
		if i == m.selected {
			c = config.CheckpointColor
		}
		text.Draw(screen, line, face, x, y, c)
		y += config.HUDLineHeight
	}

	y += config.HUDLineHeight
	text.Draw(screen, "Up/Down to choose, Enter to play", face, x, y, config.TextLightColor)
	if m.err != "" {
		text.Draw(screen, m.err, face, x, y+config.HUDLineHeight, config.WaveStateColor)
	}
}

func (m *MenuState) Exit() {}
