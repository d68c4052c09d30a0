// internal/combat/damage.go
package combat

import (
	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/defs"
)

// Hit describes what a single ApplyDamage call did to a yarn.
type Hit struct {
	Dealt        int
	LayersPopped int
	Killed       bool
}

// ApplyDamage hits the yarn's outer layer with up to incoming damage.
//
// The current layer takes min(incoming, layer health), limited by its
// absorption cap. When the layer is popped the yarn moves to the layer below
// with that layer's full health; the leftover damage passes through only for
// penetrating impacts on a penetrable surface. The surface checked is the one
// of the layer that was just popped. A yarn whose base layer is popped is dead
// and takes no more damage.
func ApplyDamage(y *component.Yarn, incoming int, impact defs.SurfaceImpact) (Hit, error) {
	var hit Hit
	for {
		if !y.CanBeDamaged() || incoming <= 0 {
			return hit, nil
		}

		layerDamage := min(incoming, y.LayerHealth)
		if limit, ok := y.Values.DamageAbsorptionCap.Get(); ok {
			layerDamage = min(layerDamage, limit)
		}
		y.LayerHealth -= layerDamage
		hit.Dealt += layerDamage
		if y.LayerHealth > 0 {
			return hit, nil
		}

		hit.LayersPopped++
		surface := y.Values.Surface
		below, ok, err := y.Layers.Below(y.Layer)
		if err != nil {
			return hit, err
		}
		if !ok {
			y.Dead = true
			hit.Killed = true
			return hit, nil
		}
		if err := y.SetLayer(below); err != nil {
			return hit, err
		}

		if impact == defs.ImpactSurfaceOnly || surface == defs.SurfaceImpenetrable {
			return hit, nil
		}
		incoming -= layerDamage
	}
}

// YarnTarget adapts a yarn to Target. OnHit, when set, is called after every
// hit that dealt damage.
type YarnTarget struct {
	Yarn  *component.Yarn
	OnHit func(Hit)
}

func (t YarnTarget) CanBeDamaged() bool {
	return t.Yarn.CanBeDamaged()
}

func (t YarnTarget) ApplyDamage(amount int, impact defs.SurfaceImpact) (int, error) {
	hit, err := ApplyDamage(t.Yarn, amount, impact)
	if t.OnHit != nil && hit.Dealt > 0 {
		t.OnHit(hit)
	}
	return hit.Dealt, err
}
