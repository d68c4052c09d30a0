// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"go-yarn-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton cycles the game speed. Each state has its own colour.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, StateColors: stateColors}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * clickScale(b.LastClickTime)
	c := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8

	// two chevrons
	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

func (b *SpeedButton) IsClicked(mx, my int) bool {
	return inCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

// ToggleState moves to the next speed and returns it.
func (b *SpeedButton) ToggleState() int {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	return b.CurrentState
}

func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, c color.Color) {
	path := render.Triangle(x1, y1, x2, y2, x3, y3)
	render.FillPath(screen, path, c)
	render.StrokePath(screen, path, 1, color.White)
}
