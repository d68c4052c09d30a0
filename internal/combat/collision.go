// internal/combat/collision.go
package combat

import (
	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/defs"
)

// Target is anything a projectile or an area of effect can damage.
type Target interface {
	CanBeDamaged() bool
	ApplyDamage(amount int, impact defs.SurfaceImpact) (int, error)
}

// Environment is what the combat code needs from the world around it.
type Environment interface {
	// DamageableWithin returns the targets within radius of origin, nearest first.
	DamageableWithin(origin component.Position, radius float64) []Target
	// AreaEffectFired is told about every area of effect before it deals damage.
	AreaEffectFired(origin component.Position, aoe defs.AreaOfEffect)
}

// CollisionResult sums up one projectile hitting one target.
type CollisionResult struct {
	DamageDealt      int // direct damage, area damage excluded
	AreaDamage       int
	AreaEffectsFired int
	Swapped          int // number of times the projectile switched to its below config
	Alive            bool
}

// collisionDamage is the most damage the active config may deal in one hit.
func collisionDamage(p *component.Projectile) int {
	cfg := p.Active
	if !cfg.MaxTotalDamage.Enabled {
		return defs.Uncapped
	}
	damage := min(cfg.MaxTotalDamage.Value, p.DamageLeft)
	if perHit, ok := cfg.MaxDamagePerCollision.Get(); ok && cfg.ShellDurability == defs.ShellRigid {
		damage = min(damage, perHit)
	}
	return damage
}

// ResolveCollision applies one collision between a live projectile and target.
//
// Each pass of the loop handles one active config. A pass that exhausts the
// damage budget, or any pass of a fragile shell, ends that config: it either
// swaps to the below config or kills the projectile. After a swap the below
// config hits the same target again only when the config it replaced was set
// to StackCanDamageWithBoth, even if that target is already dead. Area
// effects fire on the first pass (FIRST_IMPACT), on every pass (ALL_IMPACTS)
// or on the pass that ends the config (LAST_IMPACT).
func ResolveCollision(p *component.Projectile, target Target, origin component.Position, env Environment) (CollisionResult, error) {
	res := CollisionResult{Alive: p.Alive}
	if !p.Alive || p.Active == nil || !target.CanBeDamaged() {
		return res, nil
	}

	impacted := false
	for {
		cfg := p.Active
		damage := collisionDamage(p)

		aoe, hasArea := cfg.ImpactAreaOfEffect.Get()
		if hasArea && (aoe.TriggerType == defs.TriggerAllImpacts || (aoe.TriggerType == defs.TriggerFirstImpact && !impacted)) {
			if err := res.fireArea(origin, aoe, env); err != nil {
				return res, err
			}
		}

		dealt, err := target.ApplyDamage(damage, cfg.SurfaceImpact)
		if err != nil {
			return res, err
		}
		impacted = true
		res.DamageDealt += dealt
		p.DamageLeft = defs.SubSaturating(p.DamageLeft, dealt)

		if p.DamageLeft > 0 && cfg.ShellDurability == defs.ShellRigid {
			break
		}

		if hasArea && aoe.TriggerType == defs.TriggerLastImpact {
			if err := res.fireArea(origin, aoe, env); err != nil {
				return res, err
			}
		}
		if cfg.Below == nil {
			p.Alive = false
			break
		}
		p.Apply(cfg.Below)
		res.Swapped++
		if cfg.BelowDamageStack != defs.StackCanDamageWithBoth {
			break
		}
	}

	res.Alive = p.Alive
	return res, nil
}

func (res *CollisionResult) fireArea(origin component.Position, aoe defs.AreaOfEffect, env Environment) error {
	res.AreaEffectsFired++
	env.AreaEffectFired(origin, aoe)
	dealt, err := DealAreaOfEffectDamage(origin, aoe, env)
	res.AreaDamage += dealt
	return err
}
