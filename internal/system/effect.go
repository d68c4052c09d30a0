// internal/system/effect.go
package system

import (
	"log"

	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
)

// EffectSystem advances damage flashes, area-effect visuals and the death
// effects of dying entities.
type EffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EffectSystem {
	return &EffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *EffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, area := range s.ecs.AreaEffects {
		area.Elapsed += deltaTime
		if area.Effect.Done(area.Elapsed) {
			s.ecs.RemoveEntity(id)
		}
	}

	for id, dying := range s.ecs.Dying {
		dying.Elapsed += deltaTime
		if dying.Effect.Enabled && !dying.Effect.Value.Done(dying.Elapsed) {
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.EffectFinished, Data: event.EffectFinishedData{ID: id}})
		if s.ecs.IsDying(id) {
			log.Printf("EffectSystem: nobody tore down entity %d, removing it", id)
			s.ecs.RemoveEntity(id)
		}
	}
}
