// internal/interfaces/game_context.go
package interfaces

// GameContext is what the state system needs from the running game.
type GameContext interface {
	StartWave() error
	WaveCount() int
	ClearField()
}
