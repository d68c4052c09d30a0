// internal/component/yarn.go
package component

import "go-yarn-defense/internal/defs"

// Yarn is a live enemy. It keeps a cursor into a shared, read-only layer chain
// plus the health left on the layer currently on top.
type Yarn struct {
	Layers      *defs.LayerSet
	Layer       defs.LayerID
	LayerHealth int
	Values      defs.LayerValues // resolved values of Layer
	Dead        bool
}

// NewYarn creates a yarn with top as its outermost layer.
func NewYarn(layers *defs.LayerSet, top defs.LayerID) (*Yarn, error) {
	y := &Yarn{Layers: layers, Layer: defs.NoLayer}
	if err := y.SetLayer(top); err != nil {
		return nil, err
	}
	return y, nil
}

// SetLayer moves the cursor to id and restores that layer's full health.
func (y *Yarn) SetLayer(id defs.LayerID) error {
	values, err := y.Layers.Resolve(id)
	if err != nil {
		return err
	}
	y.Layer = id
	y.Values = values
	y.LayerHealth = values.Health
	return nil
}

// CanBeDamaged reports whether the yarn still has health on its current layer.
func (y *Yarn) CanBeDamaged() bool {
	return !y.Dead && y.LayerHealth > 0
}
