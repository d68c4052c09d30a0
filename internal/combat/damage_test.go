package combat

import (
	"errors"
	"testing"

	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/pkg/override"
)

func baseValues(health int) defs.LayerValues {
	return defs.LayerValues{Speed: 1, Health: health, Surface: defs.SurfacePenetrable, Sprite: "s"}
}

func newYarn(t *testing.T, set *defs.LayerSet, top defs.LayerID) *component.Yarn {
	t.Helper()
	y, err := component.NewYarn(set, top)
	if err != nil {
		t.Fatalf("NewYarn() error: %v", err)
	}
	return y
}

func TestApplyDamageSingleBaseLayer(t *testing.T) {
	set := defs.NewLayerSet()
	id := set.Add(&defs.BaseLayer{Name: "red", Values: baseValues(1)})
	y := newYarn(t, set, id)

	hit, err := ApplyDamage(y, 1, defs.ImpactSurfaceOnly)
	if err != nil {
		t.Fatalf("ApplyDamage() error: %v", err)
	}
	if hit.Dealt != 1 || !hit.Killed || !y.Dead {
		t.Errorf("ApplyDamage() = %+v, dead %v; want 1 dealt and killed", hit, y.Dead)
	}
}

func TestApplyDamageAbsorptionCapPerCall(t *testing.T) {
	set := defs.NewLayerSet()
	base := set.Add(&defs.BaseLayer{Name: "base", Values: baseValues(2)})
	top := set.Add(&defs.OverrideLayer{
		Name:                "armored",
		Below:               base,
		Health:              override.Some(3),
		DamageAbsorptionCap: override.Some(1),
	})
	y := newYarn(t, set, top)

	hit, _ := ApplyDamage(y, 5, defs.ImpactPenetrating)
	if hit.Dealt != 1 || y.LayerHealth != 2 {
		t.Fatalf("first hit = %+v, layer health %d; want 1 dealt, 2 left", hit, y.LayerHealth)
	}
	for i := 0; i < 2; i++ {
		hit, _ = ApplyDamage(y, 1, defs.ImpactPenetrating)
		if hit.Dealt != 1 {
			t.Fatalf("hit %d dealt %d, want 1", i+2, hit.Dealt)
		}
	}
	if y.Layer != base || y.LayerHealth != 2 {
		t.Fatalf("after draining the capped layer: layer %d health %d; want base with 2", y.Layer, y.LayerHealth)
	}
	hit, _ = ApplyDamage(y, 2, defs.ImpactPenetrating)
	if hit.Dealt != 2 || !hit.Killed {
		t.Errorf("final hit = %+v, want 2 dealt and killed", hit)
	}
}

func TestApplyDamagePassThrough(t *testing.T) {
	newChain := func(topSurface defs.Surface) (*defs.LayerSet, defs.LayerID) {
		set := defs.NewLayerSet()
		base := set.Add(&defs.BaseLayer{Name: "red", Values: baseValues(1)})
		mid := set.Add(&defs.OverrideLayer{Name: "blue", Below: base, Health: override.Some(2)})
		top := set.Add(&defs.OverrideLayer{
			Name:    "green",
			Below:   mid,
			Health:  override.Some(3),
			Surface: override.Some(topSurface),
		})
		return set, top
	}

	tests := []struct {
		name      string
		surface   defs.Surface
		impact    defs.SurfaceImpact
		incoming  int
		dealt     int
		popped    int
		killed    bool
		endHealth int
	}{
		{"surface only stops after one layer", defs.SurfacePenetrable, defs.ImpactSurfaceOnly, 10, 3, 1, false, 2},
		{"penetrating goes through every layer", defs.SurfacePenetrable, defs.ImpactPenetrating, 10, 6, 3, true, 0},
		{"penetrating partial", defs.SurfacePenetrable, defs.ImpactPenetrating, 4, 4, 1, false, 1},
		{"impenetrable surface of popped layer blocks", defs.SurfaceImpenetrable, defs.ImpactPenetrating, 10, 3, 1, false, 2},
		{"no pop", defs.SurfacePenetrable, defs.ImpactPenetrating, 2, 2, 0, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, top := newChain(tt.surface)
			y := newYarn(t, set, top)
			hit, err := ApplyDamage(y, tt.incoming, tt.impact)
			if err != nil {
				t.Fatalf("ApplyDamage() error: %v", err)
			}
			if hit.Dealt != tt.dealt || hit.LayersPopped != tt.popped || hit.Killed != tt.killed {
				t.Errorf("ApplyDamage() = %+v, want dealt %d popped %d killed %v", hit, tt.dealt, tt.popped, tt.killed)
			}
			if y.LayerHealth != tt.endHealth {
				t.Errorf("layer health = %d, want %d", y.LayerHealth, tt.endHealth)
			}
			if hit.Dealt > tt.incoming {
				t.Errorf("dealt %d more than incoming %d", hit.Dealt, tt.incoming)
			}
		})
	}
}

func TestApplyDamageAfterDeathIsNoop(t *testing.T) {
	set := defs.NewLayerSet()
	id := set.Add(&defs.BaseLayer{Name: "red", Values: baseValues(1)})
	y := newYarn(t, set, id)
	if _, err := ApplyDamage(y, 1, defs.ImpactPenetrating); err != nil {
		t.Fatal(err)
	}
	before := *y

	for i := 0; i < 3; i++ {
		hit, err := ApplyDamage(y, 100, defs.ImpactPenetrating)
		if err != nil || hit != (Hit{}) {
			t.Errorf("hit on dead yarn = %+v, %v", hit, err)
		}
	}
	if y.Layer != before.Layer || y.LayerHealth != before.LayerHealth || !y.Dead {
		t.Errorf("dead yarn state changed: %+v", y)
	}
}

func TestApplyDamageNeverExceedsStackedHealth(t *testing.T) {
	set := defs.NewLayerSet()
	base := set.Add(&defs.BaseLayer{Name: "a", Values: baseValues(2)})
	top := set.Add(&defs.OverrideLayer{Name: "b", Below: base, Health: override.Some(4)})
	stacked, err := set.StackedHealth(top)
	if err != nil {
		t.Fatal(err)
	}

	for _, incoming := range []int{0, 1, 5, 6, 7, defs.Uncapped} {
		y := newYarn(t, set, top)
		hit, err := ApplyDamage(y, incoming, defs.ImpactPenetrating)
		if err != nil {
			t.Fatal(err)
		}
		if hit.Dealt < 0 || hit.Dealt > min(incoming, stacked) {
			t.Errorf("incoming %d: dealt %d outside [0, %d]", incoming, hit.Dealt, min(incoming, stacked))
		}
	}
}

func TestApplyDamageDanglingBelow(t *testing.T) {
	set := defs.NewLayerSet()
	base := set.Add(&defs.BaseLayer{Name: "a", Values: baseValues(1)})
	top := set.Add(&defs.OverrideLayer{Name: "b", Below: base})
	y := newYarn(t, set, top)
	// point the live cursor at an id the set does not know about
	y.Layer = defs.LayerID(99)

	_, err := ApplyDamage(y, 5, defs.ImpactPenetrating)
	if !errors.Is(err, defs.ErrInvalidLayerVariant) {
		t.Errorf("ApplyDamage() error = %v, want ErrInvalidLayerVariant", err)
	}
}
