// internal/system/movement.go
package system

import (
	"log"
	"math"

	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/physics"
	"go-yarn-defense/internal/types"
)

// MovementSystem walks yarns along their path and handles yarns that reach
// the exit.
type MovementSystem struct {
	ecs             *entity.ECS
	world           *physics.World
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, world *physics.World, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, world: world, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range sortedKeys(s.ecs.Yarns) {
		yarn := s.ecs.Yarns[id]
		if s.ecs.IsDying(id) {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasPath {
			continue
		}

		// Speed comes from the current layer, so a popped yarn changes pace at once.
		moveDistance := yarn.Values.Speed * deltaTime
		for path.CurrentIndex < len(path.Points) {
			target := path.Points[path.CurrentIndex]
			dx := target.X - pos.X
			dy := target.Y - pos.Y
			dist := math.Sqrt(dx*dx + dy*dy)

			if dist <= moveDistance || dist <= config.WaypointTolerance {
				pos.X = target.X
				pos.Y = target.Y
				moveDistance = max(0, moveDistance-dist)
				path.CurrentIndex++
				continue
			}
			pos.X += (dx / dist) * moveDistance
			pos.Y += (dy / dist) * moveDistance
			break
		}
		s.world.Move(id, pos.X, pos.Y)

		if path.CurrentIndex >= len(path.Points) {
			s.leak(id)
		}
	}
}

// leak removes a yarn that reached the exit. The player takes the full
// stacked health of the layer the yarn arrived with.
func (s *MovementSystem) leak(id types.EntityID) {
	yarn := s.ecs.Yarns[id]
	damage, err := yarn.Layers.StackedHealth(yarn.Layer)
	if err != nil {
		log.Printf("MovementSystem: stacked health of yarn %d: %v", id, err)
		damage = yarn.LayerHealth
	}
	s.world.Remove(id)
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.YarnLeaked, Data: event.YarnLeakedData{ID: id, Damage: damage}})
}
