package system

import (
	"testing"

	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/pkg/override"
)

func TestProjectileKillsYarn(t *testing.T) {
	f := newFixture(t)
	rec := record(f.dispatcher, event.LayerPopped, event.YarnKilled, event.ProjectileKilled)
	yarn := f.addYarn(t, f.red, 1, 0)
	proj := f.projectiles.Spawn(dart(), 0, 0, 1, 0)

	f.projectiles.Update(0.2)

	if !f.ecs.IsDying(yarn) || !f.ecs.IsDying(proj) {
		t.Fatalf("dying: yarn %v, projectile %v", f.ecs.IsDying(yarn), f.ecs.IsDying(proj))
	}
	if f.world.Contains(yarn) || f.world.Contains(proj) {
		t.Errorf("dying entities must stop colliding")
	}
	if !f.ecs.Yarns[yarn].Dead {
		t.Errorf("yarn not dead")
	}
	for _, typ := range []event.EventType{event.LayerPopped, event.YarnKilled, event.ProjectileKilled} {
		if rec.count(typ) != 1 {
			t.Errorf("%s dispatched %d times", typ, rec.count(typ))
		}
	}

	f.effects.Update(1)
	if len(f.ecs.Yarns) != 0 || len(f.ecs.Projectiles) != 0 || len(f.ecs.Dying) != 0 {
		t.Errorf("after the effects: %d yarns, %d projectiles, %d dying", len(f.ecs.Yarns), len(f.ecs.Projectiles), len(f.ecs.Dying))
	}
}

func TestProjectileHitsEachYarnOnce(t *testing.T) {
	f := newFixture(t)
	f.layers.Add(&defs.BaseLayer{Name: "tough", Values: defs.LayerValues{Speed: 1, Health: 10, Sprite: "tough"}})
	tough, _ := f.layers.Lookup("tough")
	yarn := f.addYarn(t, tough, 1, 0)

	cfg := dart()
	cfg.MaxTotalDamage = override.Some(5)
	cfg.MaxDamagePerCollision = override.Some(2)
	cfg.TravelSpeed = 0.1
	f.projectiles.Spawn(cfg, 0.8, 0, 1, 0)

	for i := 0; i < 5; i++ {
		f.projectiles.Update(0.1)
	}
	if got := f.ecs.Yarns[yarn].LayerHealth; got != 8 {
		t.Errorf("yarn health = %d, want one hit of 2 while overlapping", got)
	}
}

func TestProjectileBelowSwap(t *testing.T) {
	f := newFixture(t)
	f.addYarn(t, f.blue, 1, 0)
	below := dart()
	below.Name = "shard"
	below.TravelSpeed = 1
	below.ColliderRadius = 0.1
	shell := dart()
	shell.Name = "shell"
	shell.Below = below

	id := f.projectiles.Spawn(shell, 0, 0, 1, 0)
	f.projectiles.Update(0.2)

	p := f.ecs.Projectiles[id]
	if !p.Alive || p.Active != below {
		t.Fatalf("projectile alive %v with %q, want the below config", p.Alive, p.Active.Name)
	}
	if v := f.ecs.Velocities[id].Speed; v != 1 {
		t.Errorf("speed after swap = %v", v)
	}
	if r := f.ecs.Renderables[id].Radius; r != 0.1 {
		t.Errorf("radius after swap = %v", r)
	}
}

func TestProjectileAreaEffect(t *testing.T) {
	f := newFixture(t)
	rec := record(f.dispatcher, event.AreaEffectFired, event.YarnKilled)
	near := f.addYarn(t, f.red, 1, 0)
	second := f.addYarn(t, f.red, 1.5, 0)
	far := f.addYarn(t, f.red, 5, 0)

	bomb := dart()
	bomb.ShellDurability = defs.ShellFragile
	bomb.ImpactAreaOfEffect = override.Some(defs.AreaOfEffect{
		Radius:               2,
		MaxDamagePerCollider: override.Some(1),
		ImpactType:           defs.ImpactSurfaceOnly,
		TriggerType:          defs.TriggerFirstImpact,
		Effect:               defs.Effect{Duration: 0.5, Size: 1},
		EffectPrefab:         "explosion",
	})
	id := f.projectiles.Spawn(bomb, 0, 0, 1, 0)
	f.projectiles.Update(0.2)

	if rec.count(event.AreaEffectFired) != 1 || len(f.ecs.AreaEffects) != 1 {
		t.Fatalf("area effects: %d events, %d entities", rec.count(event.AreaEffectFired), len(f.ecs.AreaEffects))
	}
	if !f.ecs.IsDying(near) || !f.ecs.IsDying(second) || f.ecs.IsDying(far) {
		t.Errorf("dying: near %v, second %v, far %v", f.ecs.IsDying(near), f.ecs.IsDying(second), f.ecs.IsDying(far))
	}
	if f.ecs.Projectiles[id].Alive {
		t.Errorf("fragile projectile survived its impact")
	}

	f.effects.Update(0.6)
	if len(f.ecs.AreaEffects) != 0 {
		t.Errorf("area effect not removed after its duration")
	}
}

func TestProjectileCulling(t *testing.T) {
	f := newFixture(t)
	cfg := dart()
	cfg.MaxLifetime = override.Some(0.5)
	short := f.projectiles.Spawn(cfg, 0, 0, 0, 1)
	away := f.projectiles.Spawn(dart(), 1e4, 0, 1, 0)

	f.projectiles.Update(0.1)
	if _, ok := f.ecs.Projectiles[away]; ok {
		t.Errorf("projectile outside the view was not culled")
	}
	if _, ok := f.ecs.Projectiles[short]; !ok {
		t.Fatalf("projectile culled before its lifetime")
	}
	f.projectiles.Update(0.5)
	if _, ok := f.ecs.Projectiles[short]; ok || f.ecs.IsDying(short) {
		t.Errorf("expired projectile should be removed without a kill sequence")
	}
}
