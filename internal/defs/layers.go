// internal/defs/layers.go
package defs

import (
	"fmt"
	"image/color"

	"go-yarn-defense/pkg/override"
)

// LayerID indexes a layer inside a LayerSet.
type LayerID int

// NoLayer is the zero reference used by entities that have no layer yet.
const NoLayer LayerID = -1

// LayerValues holds everything a yarn needs while one layer is on top.
type LayerValues struct {
	Speed               float64                   `yaml:"speed"`
	Health              int                       `yaml:"health"`
	DamageAbsorptionCap override.Optional[int]    `yaml:"damageAbsorptionCap,omitempty"`
	Surface             Surface                   `yaml:"surface"`
	Color               color.RGBA                `yaml:"color"`
	Sprite              string                    `yaml:"sprite"`
	DeathEffect         override.Optional[Effect] `yaml:"deathEffect,omitempty"` // never overridden
}

// Layer is one tier of a yarn. It is either a *BaseLayer or an *OverrideLayer.
type Layer interface {
	LayerName() string
	isLayer()
}

// BaseLayer terminates a chain and owns concrete values.
type BaseLayer struct {
	Name   string
	Values LayerValues
}

func (l *BaseLayer) LayerName() string { return l.Name }
func (*BaseLayer) isLayer()            {}

// OverrideLayer sits on top of another layer and replaces some of its values.
type OverrideLayer struct {
	Name  string
	Below LayerID

	Speed               override.Optional[float64]
	Health              override.Optional[int]
	DamageAbsorptionCap override.Optional[int]
	Surface             override.Optional[Surface]
	Color               override.Optional[color.RGBA]
	Sprite              override.Optional[string]
}

func (l *OverrideLayer) LayerName() string { return l.Name }
func (*OverrideLayer) isLayer()            {}

// Apply writes every enabled override onto v.
func (l *OverrideLayer) Apply(v LayerValues) LayerValues {
	if l.Speed.Enabled {
		v.Speed = l.Speed.Value
	}
	if l.Health.Enabled {
		v.Health = l.Health.Value
	}
	if l.DamageAbsorptionCap.Enabled {
		v.DamageAbsorptionCap = override.Some(l.DamageAbsorptionCap.Value)
	}
	if l.Surface.Enabled {
		v.Surface = l.Surface.Value
	}
	if l.Color.Enabled {
		v.Color = l.Color.Value
	}
	if l.Sprite.Enabled {
		v.Sprite = l.Sprite.Value
	}
	return v
}

// LayerSet is the arena every yarn chain lives in. It is shared read-only by
// all yarns spawned from it; yarns only keep a LayerID cursor into it.
type LayerSet struct {
	layers []Layer
	byName map[string]LayerID
}

func NewLayerSet() *LayerSet {
	return &LayerSet{byName: make(map[string]LayerID)}
}

// Add appends a layer and returns its id. Override layers must point at ids
// that exist by the time the set is used.
func (s *LayerSet) Add(l Layer) LayerID {
	id := LayerID(len(s.layers))
	s.layers = append(s.layers, l)
	if l != nil && l.LayerName() != "" {
		s.byName[l.LayerName()] = id
	}
	return id
}

func (s *LayerSet) Len() int { return len(s.layers) }

// Lookup finds a layer by name.
func (s *LayerSet) Lookup(name string) (LayerID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// Get returns the layer stored at id.
func (s *LayerSet) Get(id LayerID) (Layer, error) {
	if id < 0 || int(id) >= len(s.layers) {
		return nil, fmt.Errorf("layer id %d out of range [0,%d): %w", id, len(s.layers), ErrInvalidLayerVariant)
	}
	return s.layers[id], nil
}

// Below returns the next layer down. ok is false for a base layer.
func (s *LayerSet) Below(id LayerID) (below LayerID, ok bool, err error) {
	l, err := s.Get(id)
	if err != nil {
		return NoLayer, false, err
	}
	switch layer := l.(type) {
	case *BaseLayer:
		return NoLayer, false, nil
	case *OverrideLayer:
		return layer.Below, true, nil
	default:
		return NoLayer, false, fmt.Errorf("layer %d (%T): %w", id, l, ErrInvalidLayerVariant)
	}
}

// chain returns the layers from id down to and including the base.
func (s *LayerSet) chain(id LayerID) ([]Layer, error) {
	var out []Layer
	for {
		if len(out) > len(s.layers) {
			return nil, fmt.Errorf("layer %d: chain does not terminate: %w", id, ErrConfigInvariant)
		}
		l, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
		switch layer := l.(type) {
		case *BaseLayer:
			return out, nil
		case *OverrideLayer:
			id = layer.Below
		default:
			return nil, fmt.Errorf("layer %d (%T): %w", id, l, ErrInvalidLayerVariant)
		}
	}
}

// Resolve returns the effective values of the layer at id: the base values
// with every override between the base and id applied, lowest first.
func (s *LayerSet) Resolve(id LayerID) (LayerValues, error) {
	layers, err := s.chain(id)
	if err != nil {
		return LayerValues{}, err
	}
	values := layers[len(layers)-1].(*BaseLayer).Values
	for i := len(layers) - 2; i >= 0; i-- {
		values = layers[i].(*OverrideLayer).Apply(values)
	}
	return values, nil
}

// StackedHealth sums the full resolved health of every layer from id down to
// the base. It ignores any damage a live yarn has taken.
func (s *LayerSet) StackedHealth(id LayerID) (int, error) {
	layers, err := s.chain(id)
	if err != nil {
		return 0, err
	}
	values := layers[len(layers)-1].(*BaseLayer).Values
	total := values.Health
	for i := len(layers) - 2; i >= 0; i-- {
		values = layers[i].(*OverrideLayer).Apply(values)
		total += values.Health
	}
	return total, nil
}
