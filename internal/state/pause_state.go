// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-yarn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes a running game and draws it dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	resume := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		resume = resume || s.previousState.pauseButton.IsClicked(x, y)
	}
	if !resume {
		return
	}
	s.previousState.game.HandlePauseClick()
	s.previousState.pauseButton.TogglePause()
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	face := s.previousState.fontFace
	msg := "PAUSED"
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
