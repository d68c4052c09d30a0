// internal/combat/area.go
package combat

import (
	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/defs"
)

// DealAreaOfEffectDamage spends the area's damage budget on the targets in
// range, nearest first, giving each at most MaxDamagePerCollider.
func DealAreaOfEffectDamage(origin component.Position, aoe defs.AreaOfEffect, env Environment) (int, error) {
	budget := defs.CapOrUncapped(aoe.MaxTotalDamage)
	total := 0
	for _, t := range env.DamageableWithin(origin, aoe.Radius) {
		if budget <= 0 {
			break
		}
		if !t.CanBeDamaged() {
			continue
		}
		amount := budget
		if limit, ok := aoe.MaxDamagePerCollider.Get(); ok {
			amount = min(amount, limit)
		}
		dealt, err := t.ApplyDamage(amount, aoe.ImpactType)
		if err != nil {
			return total, err
		}
		total += dealt
		budget = defs.SubSaturating(budget, dealt)
	}
	return total, nil
}
