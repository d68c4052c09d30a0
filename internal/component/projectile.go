// internal/component/projectile.go
package component

import (
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/types"
)

// Projectile is a projectile in flight.
type Projectile struct {
	Active     *defs.Projectile // may be swapped for Active.Below mid-flight
	DamageLeft int              // defs.Uncapped when the active config has no cap
	Alive      bool
	DirX, DirY float64 // unit direction
	Age        float64
	Overlaps   map[types.EntityID]struct{} // yarns touched last frame
}

// NewProjectile creates a live projectile using cfg.
func NewProjectile(cfg *defs.Projectile, dirX, dirY float64) *Projectile {
	p := &Projectile{
		Alive:    true,
		DirX:     dirX,
		DirY:     dirY,
		Overlaps: make(map[types.EntityID]struct{}),
	}
	p.Apply(cfg)
	return p
}

// Apply makes cfg the active config and resets the damage budget from it.
func (p *Projectile) Apply(cfg *defs.Projectile) {
	p.Active = cfg
	p.DamageLeft = defs.CapOrUncapped(cfg.MaxTotalDamage)
}
