// internal/system/state.go
package system

import (
	"fmt"
	"log"

	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/interfaces"
)

// StateSystem moves the match between build, wave, defeat and victory.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	eventDispatcher.Subscribe(event.PlayerDefeated, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		if s.Current() == component.DefeatState {
			return
		}
		data := e.Data.(event.WaveData)
		if data.Index+1 >= s.gameContext.WaveCount() {
			s.set(component.VictoryState)
			return
		}
		s.SwitchToBuildState()
	case event.PlayerDefeated:
		s.set(component.DefeatState)
	}
}

func (s *StateSystem) SwitchToBuildState() {
	s.set(component.BuildState)
	s.gameContext.ClearField()
}

// SwitchToWaveState starts the next wave. It is only allowed while building.
func (s *StateSystem) SwitchToWaveState() error {
	if s.Current() != component.BuildState {
		return fmt.Errorf("cannot start a wave in %s state", s.Current())
	}
	if err := s.gameContext.StartWave(); err != nil {
		return err
	}
	s.set(component.WaveState)
	return nil
}

func (s *StateSystem) Current() component.GameState {
	return *s.ecs.GameState
}

func (s *StateSystem) set(state component.GameState) {
	if *s.ecs.GameState != state {
		log.Printf("StateSystem: %s -> %s", *s.ecs.GameState, state)
	}
	*s.ecs.GameState = state
}
