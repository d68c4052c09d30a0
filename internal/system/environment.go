// internal/system/environment.go
package system

import (
	"go-yarn-defense/internal/combat"
	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/physics"
	"go-yarn-defense/internal/types"
	"go-yarn-defense/pkg/override"
)

// DamageableWithin lists the live yarns touching the circle around origin,
// nearest first.
func (s *ProjectileSystem) DamageableWithin(origin component.Position, radius float64) []combat.Target {
	hits := s.world.QueryRadius(origin.X, origin.Y, radius, physics.KindYarn)
	targets := make([]combat.Target, 0, len(hits))
	for _, h := range hits {
		yarn, ok := s.ecs.Yarns[h.ID]
		if !ok || s.ecs.IsDying(h.ID) {
			continue
		}
		targets = append(targets, s.yarnTarget(h.ID, yarn))
	}
	return targets
}

// AreaEffectFired leaves a visual where the area of effect went off.
func (s *ProjectileSystem) AreaEffectFired(origin component.Position, aoe defs.AreaOfEffect) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: origin.X, Y: origin.Y}
	s.ecs.AreaEffects[id] = &component.AreaEffect{
		Prefab: aoe.EffectPrefab,
		Radius: aoe.Radius,
		Effect: aoe.Effect,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  aoe.Effect.Color.Or(config.AreaEffectColor),
		Radius: float32(aoe.Radius),
		Sprite: aoe.EffectPrefab,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.AreaEffectFired, Data: event.AreaEffectData{X: origin.X, Y: origin.Y, Area: aoe}})
}

func (s *ProjectileSystem) yarnTarget(id types.EntityID, yarn *component.Yarn) combat.YarnTarget {
	return combat.YarnTarget{
		Yarn:  yarn,
		OnHit: func(hit combat.Hit) { s.onYarnHit(id, yarn, hit) },
	}
}

func (s *ProjectileSystem) onYarnHit(id types.EntityID, yarn *component.Yarn, hit combat.Hit) {
	s.ecs.DamageFlashes[id] = &component.DamageFlash{Duration: config.DamageFlashDuration}
	if hit.LayersPopped > 0 {
		if r, ok := s.ecs.Renderables[id]; ok {
			r.Color = yarn.Values.Color
			r.Sprite = yarn.Values.Sprite
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.LayerPopped, Data: event.LayerPoppedData{ID: id, Popped: hit.LayersPopped}})
	}
	if hit.Killed {
		s.killYarn(id, yarn)
	}
}

// killYarn starts a yarn's kill sequence. Layers without a death effect of
// their own fade out.
func (s *ProjectileSystem) killYarn(id types.EntityID, yarn *component.Yarn) {
	effect := yarn.Values.DeathEffect
	if !effect.Enabled {
		effect = override.Some(defs.LinearFade(config.DeathEffectDuration))
	}
	s.world.Remove(id)
	s.ecs.Dying[id] = &component.Dying{Effect: effect}
	s.eventDispatcher.Dispatch(event.Event{Type: event.YarnKilled, Data: event.YarnData{ID: id}})
}
