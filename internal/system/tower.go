// internal/system/tower.go
package system

import (
	"fmt"
	"math"

	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/physics"
	"go-yarn-defense/internal/types"
	"go-yarn-defense/internal/utils"
	"go-yarn-defense/pkg/hexmap"
)

// TowerSystem aims towers at the closest yarn in range and fires their
// current projectile.
type TowerSystem struct {
	ecs              *entity.ECS
	world            *physics.World
	eventDispatcher  *event.Dispatcher
	projectileSystem *ProjectileSystem
}

func NewTowerSystem(ecs *entity.ECS, world *physics.World, eventDispatcher *event.Dispatcher, projectileSystem *ProjectileSystem) *TowerSystem {
	return &TowerSystem{
		ecs:              ecs,
		world:            world,
		eventDispatcher:  eventDispatcher,
		projectileSystem: projectileSystem,
	}
}

// PlaceTower builds a level -1 tower of def on h.
func (s *TowerSystem) PlaceTower(def *defs.TowerDefinition, h hexmap.Hex) (types.EntityID, error) {
	if other, ok := s.TowerAt(h); ok {
		return 0, fmt.Errorf("hex %v already holds tower %d", h, other)
	}
	id := s.ecs.NewEntity()
	stats := component.NewStatStack(def)
	x, y := utils.HexToWorld(h)
	s.ecs.Towers[id] = &component.Tower{DefID: def.ID, Hex: h, Stats: stats}
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     stats.Stats().Color,
		Radius:    float32(config.TowerRadius),
		Sprite:    stats.Stats().Sprite,
		HasStroke: true,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{ID: id}})
	return id, nil
}

// TowerAt returns the tower standing on h.
func (s *TowerSystem) TowerAt(h hexmap.Hex) (types.EntityID, bool) {
	for id, tower := range s.ecs.Towers {
		if tower.Hex == h {
			return id, true
		}
	}
	return 0, false
}

// SetLevel moves tower id to level, clamped to the tiers it has. Looks are
// refreshed only when the level actually changed.
func (s *TowerSystem) SetLevel(id types.EntityID, level int) (defs.TowerStats, error) {
	tower, ok := s.ecs.Towers[id]
	if !ok {
		return defs.TowerStats{}, fmt.Errorf("no tower %d", id)
	}
	stats, changed := tower.Stats.SetLevel(level)
	if !changed {
		return stats, nil
	}
	if r, ok := s.ecs.Renderables[id]; ok {
		r.Color = stats.Color
		r.Sprite = stats.Sprite
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerLeveled, Data: event.TowerLeveledData{ID: id, Level: tower.Stats.Level(), Stats: stats}})
	return stats, nil
}

// Upgrade raises tower id by one level.
func (s *TowerSystem) Upgrade(id types.EntityID) (defs.TowerStats, error) {
	tower, ok := s.ecs.Towers[id]
	if !ok {
		return defs.TowerStats{}, fmt.Errorf("no tower %d", id)
	}
	return s.SetLevel(id, tower.Stats.Level()+1)
}

func (s *TowerSystem) Update(deltaTime float64) {
	for _, id := range sortedKeys(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		stats := tower.Stats.Stats()

		targetID, found := s.findTarget(*pos, stats.Range)
		var dirX, dirY float64
		if found {
			target := s.ecs.Positions[targetID]
			dx, dy := target.X-pos.X, target.Y-pos.Y
			dist := math.Hypot(dx, dy)
			if dist > 0 {
				dirX, dirY = dx/dist, dy/dist
			} else {
				dirX = 1
			}
			angle := math.Atan2(dirY, dirX)
			tower.Angle = utils.LerpAngle(tower.Angle, angle, math.Min(1, config.TowerTurnRate*deltaTime))
		}

		if tower.Cooldown > 0 {
			tower.Cooldown -= deltaTime
		}
		if tower.Cooldown > 0 || !found || stats.Projectile == nil {
			continue
		}
		s.projectileSystem.Spawn(stats.Projectile, pos.X, pos.Y, dirX, dirY)
		tower.Cooldown = stats.ShootDelay()
	}
}

// findTarget returns the closest yarn in range that can still be damaged.
func (s *TowerSystem) findTarget(from component.Position, rangeRadius float64) (types.EntityID, bool) {
	for _, h := range s.world.QueryRadius(from.X, from.Y, rangeRadius, physics.KindYarn) {
		yarn, ok := s.ecs.Yarns[h.ID]
		if !ok || s.ecs.IsDying(h.ID) || !yarn.CanBeDamaged() {
			continue
		}
		if _, ok := s.ecs.Positions[h.ID]; !ok {
			continue
		}
		return h.ID, true
	}
	return 0, false
}

// Clear removes every tower.
func (s *TowerSystem) Clear() {
	for id := range s.ecs.Towers {
		s.ecs.RemoveEntity(id)
	}
}
