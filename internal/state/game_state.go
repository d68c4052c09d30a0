// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"go-yarn-defense/internal/app"
	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/physics"
	"go-yarn-defense/internal/progress"
	"go-yarn-defense/internal/types"
	"go-yarn-defense/internal/ui"
	"go-yarn-defense/internal/utils"
	"go-yarn-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Options are the settings a run is started with.
type Options struct {
	Library  *defs.Library
	Level    string
	Progress *progress.Store
	WatchDir string // reload game data from here when set
}

// GameState plays one level.
type GameState struct {
	sm          *StateMachine
	opts        Options
	game        *app.Game
	renderer    *render.HexRenderer
	fontFace    font.Face
	indicator   *ui.StateIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	health      *ui.PlayerHealthIndicator
	wave        *ui.WaveIndicator
	infoPanel   *ui.InfoPanel
	message     string
}

func NewGameState(sm *StateMachine, opts Options) (*GameState, error) {
	g, err := app.NewGame(opts.Library, opts.Level, opts.Progress)
	if err != nil {
		return nil, err
	}
	if opts.WatchDir != "" {
		if err := g.EnableHotReload(opts.WatchDir); err != nil {
			log.Printf("GameState: hot reload disabled: %v", err)
		}
	}

	face := basicfont.Face7x13
	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PassableColor:   config.PassableColor,
		ImpassableColor: config.ImpassableColor,
		PathColor:       config.PathColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		CheckpointColor: config.CheckpointColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		TowerHexColor:   config.TowerStrokeColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	renderer := render.NewHexRenderer(g.HexMap, g.Route, config.HexSize, config.ScreenWidth, config.ScreenHeight, mapColors, face)

	// opts.Level may be empty; restarts replay the level that was resolved
	opts.Level = g.Level.Name
	return &GameState{
		sm:       sm,
		opts:     opts,
		game:     g,
		renderer: renderer,
		fontFace: face,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX),
			config.SpeedButtonY,
			config.SpeedButtonSize,
			config.SpeedButtonColors,
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX-50),
			config.SpeedButtonY,
			config.SpeedButtonSize/2,
			config.BuildStateColor,
			config.WaveStateColor,
		),
		health:    ui.NewPlayerHealthIndicator(20, 30, face),
		wave:      ui.NewWaveIndicator(config.ScreenWidth/2, 30, face),
		infoPanel: ui.NewInfoPanel(face, g.EventDispatcher),
	}, nil
}

func (s *GameState) Enter() {
	s.pauseButton.SetPaused(s.game.IsPaused())
}

func (s *GameState) Exit() {}

// Game exposes the running game to the pause screen.
func (s *GameState) Game() *app.Game {
	return s.game
}

func (s *GameState) Update(deltaTime float64) {
	if s.game.Finished() {
		s.game.Update(deltaTime)
		s.updateFinished()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.indicator.HandleClick()
		s.game.HandleIndicatorClick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.message = "Building: " + s.game.CycleSelectedTower()
	}

	consumed := s.infoPanel.Update(s.game.ECS)
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !s.handleUIClick(x, y) {
			s.handleGameClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.infoPanel.Hide()
	}

	s.game.Update(deltaTime)
}

func (s *GameState) updateFinished() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		next, err := NewGameState(s.sm, s.opts)
		if err != nil {
			log.Printf("GameState: restart: %v", err)
			return
		}
		s.game.Close()
		s.sm.SetState(next)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.Close()
		s.sm.SetState(NewMenuState(s.sm, s.opts))
	}
}

func (s *GameState) pause() {
	s.game.HandlePauseClick()
	s.pauseButton.TogglePause()
	s.sm.SetState(NewPauseState(s.sm, s))
}

// handleUIClick reports whether the click landed on a HUD widget.
func (s *GameState) handleUIClick(x, y int) bool {
	switch {
	case s.indicator.IsClicked(x, y):
		s.indicator.HandleClick()
		s.game.HandleIndicatorClick()
	case s.speedButton.IsClicked(x, y):
		s.game.HandleSpeedClick(s.speedButton.ToggleState())
	case s.pauseButton.IsClicked(x, y):
		s.pause()
	default:
		return false
	}
	return true
}

func (s *GameState) handleGameClick(x, y int) {
	if id, ok := s.yarnAt(x, y); ok {
		s.infoPanel.SetTarget(id)
		return
	}

	hex := utils.ScreenToHex(float64(x), float64(y))
	if !s.game.HexMap.Contains(hex) {
		s.infoPanel.Hide()
		return
	}
	if id, _, ok := s.game.GetTowerAtHex(hex); ok {
		s.infoPanel.SetTarget(id)
		return
	}
	id, err := s.game.PlaceTower(hex)
	if err != nil {
		s.message = err.Error()
		return
	}
	s.message = ""
	s.infoPanel.SetTarget(id)
}

func (s *GameState) yarnAt(x, y int) (types.EntityID, bool) {
	wx, wy := utils.ScreenToWorld(float64(x), float64(y))
	hits := s.game.World.QueryRadius(wx, wy, 0.1, physics.KindYarn)
	if len(hits) == 0 {
		return 0, false
	}
	return hits[0].ID, true
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.GetAllTowerHexes())
	if _, ok := s.game.ECS.Towers[s.infoPanel.TargetEntity]; ok {
		s.game.RenderSystem.DrawRange(screen, s.infoPanel.TargetEntity)
	}
	s.game.RenderSystem.Draw(screen)
	s.drawHUD(screen)
	s.infoPanel.Draw(screen, s.game.ECS)

	switch *s.game.ECS.GameState {
	case component.VictoryState:
		s.drawBanner(screen, "Victory!  R to replay, Esc for the menu")
	case component.DefeatState:
		s.drawBanner(screen, "Defeat.  R to retry, Esc for the menu")
	}
}

func (s *GameState) drawHUD(screen *ebiten.Image) {
	var stateColor color.Color = config.BuildStateColor
	if *s.game.ECS.GameState == component.WaveState {
		stateColor = config.WaveStateColor
	}
	s.indicator.Draw(screen, stateColor)
	s.speedButton.Draw(screen)
	s.pauseButton.Draw(screen)

	player := s.game.ECS.Player
	s.health.Draw(screen, player.Health, player.MaxHealth)
	wave := s.game.NextWave()
	if *s.game.ECS.GameState != component.WaveState {
		wave--
	}
	s.wave.Draw(screen, wave, s.game.WaveCount())

	y := 30 + int(s.health.GetHeight()) + config.HUDLineHeight
	lines := []string{
		fmt.Sprintf("Pops: %d  Leaks: %d", player.Pops, player.Leaks),
		"Building: " + s.game.SelectedTower,
	}
	if s.message != "" {
		lines = append(lines, s.message)
	}
	for _, line := range lines {
		text.Draw(screen, line, s.fontFace, 20, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}

func (s *GameState) drawBanner(screen *ebiten.Image, msg string) {
	vector.DrawFilledRect(screen, 0, config.ScreenHeight/2-30, config.ScreenWidth, 60, color.RGBA{0, 0, 0, 180}, false)
	bounds := text.BoundString(s.fontFace, msg)
	text.Draw(screen, msg, s.fontFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2+bounds.Dy()/2, config.TextLightColor)
}
