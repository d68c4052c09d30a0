// internal/component/movement.go
package component

// Position is in world units: one unit is one hex size.
type Position struct {
	X, Y float64
}

// Velocity is in world units per second.
type Velocity struct {
	Speed float64
}

// Path is the list of waypoints a yarn walks.
type Path struct {
	Points       []Position
	CurrentIndex int
}
