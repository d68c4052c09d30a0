// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"

	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/physics"
	"go-yarn-defense/internal/progress"
	"go-yarn-defense/internal/system"
	"go-yarn-defense/pkg/hexmap"
)

// Game holds the main game state and logic.
type Game struct {
	Library          *defs.Library
	Level            *defs.LevelDefinition
	HexMap           *hexmap.HexMap
	Route            []hexmap.Hex
	ECS              *entity.ECS
	World            *physics.World
	EventDispatcher  *event.Dispatcher
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	TowerSystem      *system.TowerSystem
	ProjectileSystem *system.ProjectileSystem
	EffectSystem     *system.EffectSystem
	PlayerSystem     *system.PlayerSystem
	StateSystem      *system.StateSystem
	RenderSystem     *system.RenderSystem
	Progress         *progress.Store
	SpeedMultiplier  float64
	SelectedTower    string // tower id placed by the next build click

	gameTime   float64
	isPaused   bool
	nextWave   int
	recorded   bool
	hotReload  *hotReload
	wavesClear int
}

// NewGame sets up levelName from lib. An empty name picks the first level.
// store may be nil, in which case the run is not recorded.
func NewGame(lib *defs.Library, levelName string, store *progress.Store) (*Game, error) {
	level, ok := lib.Level(levelName)
	if !ok {
		return nil, fmt.Errorf("unknown level %q", levelName)
	}
	b := level.Board
	hexMap := hexmap.New(b.Radius, b.Entry, b.Exit, b.Checkpoints, b.Blocked)
	route, err := hexMap.Route()
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}
	for _, h := range route {
		hexMap.SetTowerAllowed(h, false)
	}

	ecs := entity.NewECS()
	world := physics.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Library:         lib,
		Level:           level,
		HexMap:          hexMap,
		Route:           route,
		ECS:             ecs,
		World:           world,
		EventDispatcher: eventDispatcher,
		Progress:        store,
		SpeedMultiplier: 1.0,
	}
	if len(level.Towers) > 0 {
		g.SelectedTower = level.Towers[0]
	}

	g.WaveSystem = system.NewWaveSystem(ecs, world, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, world, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, world, eventDispatcher)
	g.TowerSystem = system.NewTowerSystem(ecs, world, eventDispatcher, g.ProjectileSystem)
	g.EffectSystem = system.NewEffectSystem(ecs, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs)
	g.PlayerSystem.Reset(level.StartHealth)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveEnded, listener)
	eventDispatcher.Subscribe(event.PlayerDefeated, listener)
	eventDispatcher.Subscribe(event.UpgradeRequested, listener)

	log.Printf("Game: level %s, %d waves, route of %d hexes", level.Name, len(level.Waves), len(route))
	return g, nil
}

// GameEventListener handles the events that end a run and requests coming from the HUD.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		l.game.wavesClear = e.Data.(event.WaveData).Index + 1
		if l.game.Finished() {
			l.game.recordRun()
		}
	case event.PlayerDefeated:
		l.game.WaveSystem.Stop()
		l.game.recordRun()
	case event.UpgradeRequested:
		if l.game.Finished() {
			return
		}
		id := e.Data.(event.TowerData).ID
		if _, err := l.game.TowerSystem.Upgrade(id); err != nil {
			log.Printf("Game: upgrade of tower %d: %v", id, err)
		}
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	g.pollReload()
	if g.isPaused {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.EffectSystem.Update(dt)
	if *g.ECS.GameState == component.WaveState {
		g.WaveSystem.Update(dt)
		g.MovementSystem.Update(dt)
		g.TowerSystem.Update(dt)
		g.ProjectileSystem.Update(dt)
	}
}

// StartWave begins the next wave of the level.
func (g *Game) StartWave() error {
	if g.nextWave >= len(g.Level.Waves) {
		return fmt.Errorf("level %s has no wave %d", g.Level.Name, g.nextWave+1)
	}
	if err := g.WaveSystem.StartWave(g.nextWave, g.Level.Waves[g.nextWave], g.Library.Layers, g.Route); err != nil {
		return err
	}
	g.nextWave++
	return nil
}

func (g *Game) WaveCount() int {
	return len(g.Level.Waves)
}

// ClearField removes leftover projectiles and effects between waves.
func (g *Game) ClearField() {
	g.ProjectileSystem.Clear()
}

// Finished reports whether the run is over.
func (g *Game) Finished() bool {
	s := *g.ECS.GameState
	return s == component.DefeatState || s == component.VictoryState
}

// WavesCleared is the number of waves survived so far.
func (g *Game) WavesCleared() int {
	return g.wavesClear
}

func (g *Game) recordRun() {
	if g.recorded || g.Progress == nil {
		return
	}
	g.recorded = true
	run := progress.RunResult{
		Level:        g.Level.Name,
		WavesCleared: g.wavesClear,
		Pops:         g.ECS.Player.Pops,
		Leaks:        g.ECS.Player.Leaks,
		Won:          *g.ECS.GameState == component.VictoryState,
	}
	if err := g.Progress.Record(run); err != nil {
		log.Printf("Game: recording the run: %v", err)
	}
}

func (g *Game) HandleIndicatorClick() {
	if *g.ECS.GameState != component.BuildState {
		return
	}
	if err := g.StateSystem.SwitchToWaveState(); err != nil {
		log.Printf("Game: %v", err)
	}
}

// HandleSpeedClick sets the speed multiplier to 2^state.
func (g *Game) HandleSpeedClick(state int) {
	g.SpeedMultiplier = math.Pow(2, float64(state))
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// NextWave is the 1-based number of the wave that starts next.
func (g *Game) NextWave() int {
	return g.nextWave + 1
}

// Close releases the data watcher, if any.
func (g *Game) Close() error {
	if g.hotReload == nil {
		return nil
	}
	return g.hotReload.watcher.Close()
}
