package system

import (
	"image/color"
	"math"
	"testing"

	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/pkg/hexmap"
	"go-yarn-defense/pkg/override"
)

func dartTower() *defs.TowerDefinition {
	return &defs.TowerDefinition{
		ID:   "dart_tower",
		Base: defs.BaseStats{Range: 3, AttackSpeed: 2, Sprite: "dart_tower", Projectile: dart()},
		Tiers: []defs.OverridableStats{
			{Range: override.Some(4.0), Color: override.Some(color.RGBA{200, 0, 0, 255})},
		},
	}
}

func TestTowerFiresAtClosestYarn(t *testing.T) {
	f := newFixture(t)
	rec := record(f.dispatcher, event.ProjectileFired)
	towers := NewTowerSystem(f.ecs, f.world, f.dispatcher, f.projectiles)
	id, err := towers.PlaceTower(dartTower(), hexmap.Hex{Q: 0, R: 0})
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}

	towers.Update(0.1)
	if rec.count(event.ProjectileFired) != 0 {
		t.Fatalf("tower fired with no yarn in range")
	}

	f.addYarn(t, f.red, 0, 2)
	f.addYarn(t, f.red, 1, 0)
	towers.Update(0.1)
	if rec.count(event.ProjectileFired) != 1 {
		t.Fatalf("fired %d projectiles, want 1", rec.count(event.ProjectileFired))
	}
	for _, p := range f.ecs.Projectiles {
		if math.Abs(p.DirX-1) > 1e-9 || math.Abs(p.DirY) > 1e-9 {
			t.Errorf("projectile direction = (%v, %v), want toward the closer yarn", p.DirX, p.DirY)
		}
	}
	if cd := f.ecs.Towers[id].Cooldown; cd != 0.5 {
		t.Errorf("cooldown = %v, want 1/attackSpeed", cd)
	}

	towers.Update(0.2)
	if rec.count(event.ProjectileFired) != 1 {
		t.Errorf("tower fired during cooldown")
	}
	towers.Update(0.35)
	if rec.count(event.ProjectileFired) != 2 {
		t.Errorf("tower did not fire after the cooldown")
	}
}

func TestTowerPlacementAndLevels(t *testing.T) {
	f := newFixture(t)
	rec := record(f.dispatcher, event.TowerPlaced, event.TowerLeveled)
	towers := NewTowerSystem(f.ecs, f.world, f.dispatcher, f.projectiles)
	h := hexmap.Hex{Q: 1, R: -1}
	id, err := towers.PlaceTower(dartTower(), h)
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if _, err := towers.PlaceTower(dartTower(), h); err == nil {
		t.Errorf("second tower on the same hex should fail")
	}

	stats, err := towers.Upgrade(id)
	if err != nil || stats.Range != 4 {
		t.Fatalf("Upgrade = %+v, %v", stats, err)
	}
	if c := f.ecs.Renderables[id].Color; c != (color.RGBA{200, 0, 0, 255}) {
		t.Errorf("renderable color = %v", c)
	}
	if _, err := towers.Upgrade(id); err != nil {
		t.Fatalf("Upgrade at max level: %v", err)
	}
	if rec.count(event.TowerLeveled) != 1 || rec.count(event.TowerPlaced) != 1 {
		t.Errorf("events = %v", rec.events)
	}

	if _, err := towers.SetLevel(id, -1); err != nil || f.ecs.Towers[id].Stats.Level() != -1 {
		t.Errorf("SetLevel(-1) left level %d, err %v", f.ecs.Towers[id].Stats.Level(), err)
	}
	if _, err := towers.SetLevel(999, 0); err == nil {
		t.Errorf("SetLevel on a missing tower should fail")
	}
}
