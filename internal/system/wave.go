// internal/system/wave.go
package system

import (
	"fmt"
	"log"

	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/physics"
	"go-yarn-defense/internal/utils"
	"go-yarn-defense/pkg/hexmap"
)

// ScheduledSpawn is one yarn to spawn At seconds after the wave started.
type ScheduledSpawn struct {
	At   float64
	Yarn string
}

// Schedule flattens a wave's spawn events into spawn times. Events run one
// after another: each waits its start delay, then spawns its yarns with the
// spawn delay after every yarn, the last one included.
func Schedule(wave defs.WaveDefinition) []ScheduledSpawn {
	var out []ScheduledSpawn
	t := 0.0
	for _, ev := range wave.Events {
		t += ev.StartDelay
		for i := 0; i < ev.Count; i++ {
			out = append(out, ScheduledSpawn{At: t, Yarn: ev.Yarn})
			t += ev.DelayBetweenSpawns
		}
	}
	return out
}

// WaveSystem spawns the yarns of the running wave and reports when it is over.
type WaveSystem struct {
	ecs             *entity.ECS
	world           *physics.World
	eventDispatcher *event.Dispatcher
	layers          *defs.LayerSet
	route           []component.Position
	schedule        []ScheduledSpawn
	next            int
	elapsed         float64
	index           int
	running         bool
}

func NewWaveSystem(ecs *entity.ECS, world *physics.World, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		world:           world,
		eventDispatcher: eventDispatcher,
		index:           -1,
	}
	eventDispatcher.Subscribe(event.EffectFinished, ws)
	return ws
}

// StartWave begins wave index. Yarns are built from layers and walk route.
func (s *WaveSystem) StartWave(index int, wave defs.WaveDefinition, layers *defs.LayerSet, route []hexmap.Hex) error {
	if len(route) == 0 {
		return fmt.Errorf("wave %d: empty route", index)
	}
	s.layers = layers
	s.route = make([]component.Position, 0, len(route))
	for _, h := range route {
		x, y := utils.HexToWorld(h)
		s.route = append(s.route, component.Position{X: x, Y: y})
	}
	s.schedule = Schedule(wave)
	s.next = 0
	s.elapsed = 0
	s.index = index
	s.running = true
	log.Printf("WaveSystem: wave %d started with %d yarns", index+1, len(s.schedule))
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Index: index}})
	return nil
}

// Running reports whether a wave is in progress.
func (s *WaveSystem) Running() bool { return s.running }

// Index is the last started wave, -1 before the first one.
func (s *WaveSystem) Index() int { return s.index }

// Pending is the number of yarns of the running wave not spawned yet.
func (s *WaveSystem) Pending() int { return len(s.schedule) - s.next }

func (s *WaveSystem) Update(deltaTime float64) {
	if !s.running {
		return
	}
	s.elapsed += deltaTime
	for s.next < len(s.schedule) && s.schedule[s.next].At <= s.elapsed {
		s.spawnYarn(s.schedule[s.next].Yarn)
		s.next++
	}
	if s.next == len(s.schedule) && len(s.ecs.Yarns) == 0 {
		s.running = false
		log.Printf("WaveSystem: wave %d ended", s.index+1)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Index: s.index}})
	}
}

// Stop abandons the running wave without reporting its end.
func (s *WaveSystem) Stop() {
	s.running = false
	s.next = len(s.schedule)
}

func (s *WaveSystem) spawnYarn(name string) {
	top, ok := s.layers.Lookup(name)
	if !ok {
		log.Printf("WaveSystem: unknown yarn layer %q", name)
		return
	}
	yarn, err := component.NewYarn(s.layers, top)
	if err != nil {
		log.Printf("WaveSystem: spawning %q: %v", name, err)
		return
	}

	id := s.ecs.NewEntity()
	start := s.route[0]
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Paths[id] = &component.Path{Points: s.route, CurrentIndex: 1}
	s.ecs.Yarns[id] = yarn
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  yarn.Values.Color,
		Radius: float32(config.YarnRadius),
		Sprite: yarn.Values.Sprite,
	}
	s.world.AddCircle(id, physics.KindYarn, start.X, start.Y, config.YarnRadius)
	s.eventDispatcher.Dispatch(event.Event{Type: event.YarnSpawned, Data: event.YarnData{ID: id}})
}

// OnEvent tears down yarns whose death effect has finished.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.EffectFinished {
		return
	}
	data := e.Data.(event.EffectFinishedData)
	if _, ok := s.ecs.Yarns[data.ID]; ok {
		s.world.Remove(data.ID)
		s.ecs.RemoveEntity(data.ID)
	}
}
