// internal/component/game_state.go
package component

// GameState is the phase the match is in.
type GameState int

const (
	BuildState GameState = iota
	WaveState
	DefeatState
	VictoryState
)

func (s GameState) String() string {
	switch s {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case DefeatState:
		return "defeat"
	case VictoryState:
		return "victory"
	}
	return "unknown"
}
