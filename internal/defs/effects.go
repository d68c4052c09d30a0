// internal/defs/effects.go
package defs

import (
	"image/color"

	"go-yarn-defense/pkg/override"
)

// CurvePoint is one key of a scale curve. T is normalized time in [0, 1].
type CurvePoint struct {
	T float64 `yaml:"t"`
	V float64 `yaml:"v"`
}

// Curve is a piecewise linear curve over normalized time.
type Curve []CurvePoint

// Evaluate samples the curve at t. Points must be sorted by T.
func (c Curve) Evaluate(t float64) float64 {
	if len(c) == 0 {
		return 1
	}
	if t <= c[0].T {
		return c[0].V
	}
	for i := 1; i < len(c); i++ {
		if t <= c[i].T {
			a, b := c[i-1], c[i]
			if b.T == a.T {
				return b.V
			}
			f := (t - a.T) / (b.T - a.T)
			return a.V + (b.V-a.V)*f
		}
	}
	return c[len(c)-1].V
}

// Effect describes a short visual played on an entity, e.g. a pop or an explosion.
type Effect struct {
	Duration float64                       `yaml:"duration"`
	Sprite   override.Optional[string]     `yaml:"sprite,omitempty"`
	Color    override.Optional[color.RGBA] `yaml:"color,omitempty"`
	Size     float64                       `yaml:"size"`
	Curve    override.Optional[Curve]      `yaml:"curve,omitempty"`
}

// LinearFade is the default death effect: white, full size, shrinking to nothing.
func LinearFade(duration float64) Effect {
	return Effect{
		Duration: duration,
		Color:    override.Some(color.RGBA{255, 255, 255, 255}),
		Size:     1,
		Curve:    override.Some(Curve{{T: 0, V: 1}, {T: 1, V: 0}}),
	}
}

// ScaleAt returns the visual scale after elapsed seconds.
func (e Effect) ScaleAt(elapsed float64) float64 {
	if !e.Curve.Enabled || e.Duration <= 0 {
		return e.Size
	}
	return e.Size * e.Curve.Value.Evaluate(elapsed/e.Duration)
}

// Done reports whether the effect has finished playing.
func (e Effect) Done(elapsed float64) bool {
	return elapsed >= e.Duration
}
