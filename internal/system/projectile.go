// internal/system/projectile.go
package system

import (
	"errors"
	"log"

	"go-yarn-defense/internal/combat"
	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/physics"
	"go-yarn-defense/internal/types"
	"go-yarn-defense/internal/utils"
)

// ProjectileSystem flies projectiles, feeds their collisions to the combat
// code and runs their kill sequence.
type ProjectileSystem struct {
	ecs             *entity.ECS
	world           *physics.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, world *physics.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	s := &ProjectileSystem{
		ecs:             ecs,
		world:           world,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EffectFinished, s)
	return s
}

// Spawn launches a projectile from (x, y) in direction (dirX, dirY), which
// must be a unit vector.
func (s *ProjectileSystem) Spawn(cfg *defs.Projectile, x, y, dirX, dirY float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = component.NewProjectile(cfg, dirX, dirY)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Renderables[id] = &component.Renderable{}
	s.world.AddCircle(id, physics.KindProjectile, x, y, cfg.ColliderRadius)
	s.applyConfig(id, cfg)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileData{ID: id}})
	return id
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range sortedKeys(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.destroy(id)
			continue
		}
		if !proj.Alive || s.ecs.IsDying(id) {
			continue
		}

		proj.Age += deltaTime
		if lifetime, ok := proj.Active.MaxLifetime.Get(); ok && proj.Age > lifetime {
			s.destroy(id)
			continue
		}

		speed := 0.0
		if vel, ok := s.ecs.Velocities[id]; ok {
			speed = vel.Speed
		}
		pos.X += proj.DirX * speed * deltaTime
		pos.Y += proj.DirY * speed * deltaTime
		if utils.OutsideView(pos.X, pos.Y, config.CullClearance) {
			s.destroy(id)
			continue
		}
		s.world.Move(id, pos.X, pos.Y)

		for _, yarnID := range s.world.NewContacts(id, physics.KindYarn) {
			yarn, ok := s.ecs.Yarns[yarnID]
			if !ok || s.ecs.IsDying(yarnID) {
				continue
			}
			res, err := combat.ResolveCollision(proj, s.yarnTarget(yarnID, yarn), *pos, s)
			if err != nil {
				if errors.Is(err, defs.ErrInvalidLayerVariant) {
					log.Printf("ProjectileSystem: yarn %d has a broken layer chain: %v", yarnID, err)
				} else {
					log.Printf("ProjectileSystem: collision %d -> %d: %v", id, yarnID, err)
				}
			}
			if res.Swapped > 0 && proj.Alive {
				s.applyConfig(id, proj.Active)
			}
			if !proj.Alive {
				s.kill(id)
				break
			}
		}
	}
}

// applyConfig refreshes speed, collider and looks after cfg became active.
func (s *ProjectileSystem) applyConfig(id types.EntityID, cfg *defs.Projectile) {
	if vel, ok := s.ecs.Velocities[id]; ok {
		vel.Speed = cfg.TravelSpeed
	}
	if r, ok := s.ecs.Renderables[id]; ok {
		r.Color = cfg.Color
		r.Sprite = cfg.Sprite
		r.Radius = float32(cfg.ColliderRadius)
	}
	s.world.SetRadius(id, cfg.ColliderRadius)
}

// kill starts the kill sequence: the projectile stops, stops colliding and
// plays its death effect before it is torn down.
func (s *ProjectileSystem) kill(id types.EntityID) {
	proj := s.ecs.Projectiles[id]
	proj.Alive = false
	delete(s.ecs.Velocities, id)
	s.world.Remove(id)
	s.ecs.Dying[id] = &component.Dying{Effect: proj.Active.DeathEffect}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileKilled, Data: event.ProjectileData{ID: id}})
}

// destroy removes a projectile at once, without a death effect.
func (s *ProjectileSystem) destroy(id types.EntityID) {
	s.world.Remove(id)
	s.ecs.RemoveEntity(id)
}

// Clear removes every projectile and area effect.
func (s *ProjectileSystem) Clear() {
	for id := range s.ecs.Projectiles {
		s.destroy(id)
	}
	for id := range s.ecs.AreaEffects {
		s.ecs.RemoveEntity(id)
	}
}

// OnEvent tears down projectiles whose death effect has finished.
func (s *ProjectileSystem) OnEvent(e event.Event) {
	if e.Type != event.EffectFinished {
		return
	}
	data := e.Data.(event.EffectFinishedData)
	if _, ok := s.ecs.Projectiles[data.ID]; ok {
		s.destroy(data.ID)
	}
}
