// internal/entity/ecs.go
package entity

import (
	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Renderables   map[types.EntityID]*component.Renderable
	Yarns         map[types.EntityID]*component.Yarn
	Towers        map[types.EntityID]*component.Tower
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Dying         map[types.EntityID]*component.Dying
	AreaEffects   map[types.EntityID]*component.AreaEffect
	Player        *component.PlayerState
	GameState     *component.GameState
}

func NewECS() *ECS {
	state := component.BuildState
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Yarns:         make(map[types.EntityID]*component.Yarn),
		Towers:        make(map[types.EntityID]*component.Tower),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Dying:         make(map[types.EntityID]*component.Dying),
		AreaEffects:   make(map[types.EntityID]*component.AreaEffect),
		Player:        &component.PlayerState{},
		GameState:     &state,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity deletes every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Yarns, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Dying, id)
	delete(ecs.AreaEffects, id)
}

// IsDying reports whether id's kill sequence has started.
func (ecs *ECS) IsDying(id types.EntityID) bool {
	_, ok := ecs.Dying[id]
	return ok
}
