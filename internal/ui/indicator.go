// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-yarn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// clickScale is the pulse applied to a widget right after it was clicked.
func clickScale(last time.Time) float32 {
	elapsed := time.Since(last).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func inCircle(mx, my int, x, y, radius float32) bool {
	dx := float32(mx) - x
	dy := float32(my) - y
	return dx*dx+dy*dy <= radius*radius
}

// StateIndicator is the round button that shows build or wave state and starts waves.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	r := i.Radius * clickScale(i.LastClickTime)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.IndicatorStroke, true)
}

func (i *StateIndicator) IsClicked(mx, my int) bool {
	return inCircle(mx, my, i.X, i.Y, i.Radius)
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
