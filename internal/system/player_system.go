// internal/system/player_system.go
package system

import (
	"log"

	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
)

// PlayerSystem applies leak damage to the player and keeps the run counters.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	ps := &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.YarnLeaked, ps)
	eventDispatcher.Subscribe(event.LayerPopped, ps)
	return ps
}

// Reset gives the player a fresh run with health hit points.
func (s *PlayerSystem) Reset(health int) {
	s.ecs.Player.Health = health
	s.ecs.Player.MaxHealth = health
	s.ecs.Player.Pops = 0
	s.ecs.Player.Leaks = 0
}

// OnEvent handles leaks and pops.
func (s *PlayerSystem) OnEvent(e event.Event) {
	player := s.ecs.Player
	switch e.Type {
	case event.LayerPopped:
		player.Pops += e.Data.(event.LayerPoppedData).Popped
	case event.YarnLeaked:
		data := e.Data.(event.YarnLeakedData)
		player.Leaks++
		if player.Defeated() {
			return
		}
		dealt := player.Damage(data.Damage)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: dealt, Health: player.Health}})
		if player.Defeated() {
			log.Printf("PlayerSystem: defeated by yarn %d", data.ID)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDefeated})
		}
	}
}
