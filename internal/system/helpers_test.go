package system

import (
	"testing"

	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/physics"
	"go-yarn-defense/internal/types"
	"go-yarn-defense/pkg/override"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func record(d *event.Dispatcher, types ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		d.Subscribe(t, r)
	}
	return r
}

type fixture struct {
	ecs         *entity.ECS
	world       *physics.World
	dispatcher  *event.Dispatcher
	layers      *defs.LayerSet
	red, blue   defs.LayerID
	waves       *WaveSystem
	projectiles *ProjectileSystem
	effects     *EffectSystem
}

// newFixture wires the systems the way the game does, minus rendering.
// red is a one-hit base layer; blue sits on red and is twice as fast.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	layers := defs.NewLayerSet()
	red := layers.Add(&defs.BaseLayer{Name: "red", Values: defs.LayerValues{
		Speed:   1,
		Health:  1,
		Surface: defs.SurfacePenetrable,
		Sprite:  "red",
	}})
	blue := layers.Add(&defs.OverrideLayer{Name: "blue", Below: red, Speed: override.Some(2.0), Sprite: override.Some("blue")})

	ecs := entity.NewECS()
	world := physics.NewWorld()
	d := event.NewDispatcher()
	f := &fixture{
		ecs:        ecs,
		world:      world,
		dispatcher: d,
		layers:     layers,
		red:        red,
		blue:       blue,
	}
	f.waves = NewWaveSystem(ecs, world, d)
	f.projectiles = NewProjectileSystem(ecs, world, d)
	f.effects = NewEffectSystem(ecs, d)
	return f
}

func (f *fixture) addYarn(t *testing.T, top defs.LayerID, x, y float64) types.EntityID {
	t.Helper()
	yarn, err := component.NewYarn(f.layers, top)
	if err != nil {
		t.Fatalf("NewYarn: %v", err)
	}
	id := f.ecs.NewEntity()
	f.ecs.Yarns[id] = yarn
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Renderables[id] = &component.Renderable{Radius: float32(config.YarnRadius)}
	f.world.AddCircle(id, physics.KindYarn, x, y, config.YarnRadius)
	return id
}

func dart() *defs.Projectile {
	return &defs.Projectile{
		Name:            "dart",
		TravelSpeed:     4,
		ColliderRadius:  0.25,
		MaxTotalDamage:  override.Some(1),
		ShellDurability: defs.ShellRigid,
		SurfaceImpact:   defs.ImpactSurfaceOnly,
	}
}
