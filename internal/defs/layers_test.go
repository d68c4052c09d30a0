package defs

import (
	"errors"
	"testing"

	"go-yarn-defense/pkg/override"
)

// red <- blue <- green, with green also overriding the cap
func testLayers(t *testing.T) (*LayerSet, LayerID, LayerID, LayerID) {
	t.Helper()
	set := NewLayerSet()
	red := set.Add(&BaseLayer{Name: "red", Values: LayerValues{
		Speed:   1,
		Health:  1,
		Surface: SurfacePenetrable,
		Sprite:  "yarn_red",
	}})
	blue := set.Add(&OverrideLayer{
		Name:   "blue",
		Below:  red,
		Speed:  override.Some(1.4),
		Health: override.Some(2),
		Sprite: override.Some("yarn_blue"),
	})
	green := set.Add(&OverrideLayer{
		Name:                "green",
		Below:               blue,
		Health:              override.Some(5),
		DamageAbsorptionCap: override.Some(3),
		Surface:             override.Some(SurfaceImpenetrable),
	})
	return set, red, blue, green
}

func TestResolve(t *testing.T) {
	set, red, blue, green := testLayers(t)

	tests := []struct {
		name    string
		id      LayerID
		speed   float64
		health  int
		sprite  string
		surface Surface
		capped  bool
	}{
		{"base", red, 1, 1, "yarn_red", SurfacePenetrable, false},
		{"one override", blue, 1.4, 2, "yarn_blue", SurfacePenetrable, false},
		{"inherits through two", green, 1.4, 5, "yarn_blue", SurfaceImpenetrable, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := set.Resolve(tt.id)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if v.Speed != tt.speed || v.Health != tt.health || v.Sprite != tt.sprite || v.Surface != tt.surface {
				t.Errorf("Resolve() = %+v", v)
			}
			if v.DamageAbsorptionCap.Enabled != tt.capped {
				t.Errorf("cap enabled = %v, want %v", v.DamageAbsorptionCap.Enabled, tt.capped)
			}
		})
	}
}

func TestStackedHealth(t *testing.T) {
	set, red, blue, green := testLayers(t)
	for id, want := range map[LayerID]int{red: 1, blue: 3, green: 8} {
		got, err := set.StackedHealth(id)
		if err != nil {
			t.Fatalf("StackedHealth(%d) error: %v", id, err)
		}
		if got != want {
			t.Errorf("StackedHealth(%d) = %d, want %d", id, got, want)
		}
	}
}

func TestBelow(t *testing.T) {
	set, red, blue, _ := testLayers(t)
	below, ok, err := set.Below(blue)
	if err != nil || !ok || below != red {
		t.Errorf("Below(blue) = %d, %v, %v", below, ok, err)
	}
	if _, ok, err := set.Below(red); err != nil || ok {
		t.Errorf("Below(red) ok = %v, err = %v; want false, nil", ok, err)
	}
}

type bogusLayer struct{}

func (bogusLayer) LayerName() string { return "bogus" }
func (bogusLayer) isLayer()          {}

func TestInvalidLayerVariant(t *testing.T) {
	set := NewLayerSet()
	id := set.Add(bogusLayer{})

	if _, err := set.Resolve(id); !errors.Is(err, ErrInvalidLayerVariant) {
		t.Errorf("Resolve(bogus) error = %v, want ErrInvalidLayerVariant", err)
	}
	if _, err := set.Resolve(LayerID(42)); !errors.Is(err, ErrInvalidLayerVariant) {
		t.Errorf("Resolve(out of range) error = %v, want ErrInvalidLayerVariant", err)
	}
}

func TestCyclicChain(t *testing.T) {
	set := NewLayerSet()
	set.Add(&OverrideLayer{Name: "a", Below: 1})
	set.Add(&OverrideLayer{Name: "b", Below: 0})

	if _, err := set.Resolve(0); !errors.Is(err, ErrConfigInvariant) {
		t.Errorf("Resolve() on a cycle error = %v, want ErrConfigInvariant", err)
	}
	if err := ValidateLayers(set); !errors.Is(err, ErrConfigInvariant) {
		t.Errorf("ValidateLayers() on a cycle error = %v, want ErrConfigInvariant", err)
	}
}

func TestValidateLayersAbsorptionCap(t *testing.T) {
	set := NewLayerSet()
	base := set.Add(&BaseLayer{Name: "base", Values: LayerValues{Health: 3, Surface: SurfacePenetrable, Sprite: "s"}})
	set.Add(&OverrideLayer{Name: "capped", Below: base, DamageAbsorptionCap: override.Some(3)})

	if err := ValidateLayers(set); !errors.Is(err, ErrConfigInvariant) {
		t.Errorf("cap equal to health should be rejected, got %v", err)
	}
}
