// internal/component/player.go
package component

// PlayerState holds the defending player's health and run counters.
type PlayerState struct {
	Health    int
	MaxHealth int
	Pops      int // layers popped this run
	Leaks     int // yarns that reached the exit
}

// Damage removes up to amount health and returns what was removed.
func (p *PlayerState) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}
	dealt := min(amount, p.Health)
	p.Health -= dealt
	return dealt
}

func (p *PlayerState) Defeated() bool {
	return p.Health <= 0
}
