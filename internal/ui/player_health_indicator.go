// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-yarn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthBarWidth  = 160
	HealthBarHeight = 14
)

var (
	healthHighColor  = color.RGBA{70, 130, 220, 255}
	healthLowColor   = color.RGBA{220, 60, 60, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 200}
)

// PlayerHealthIndicator draws the player's health as a bar with a number above it.
// The bar turns red once health drops to half.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: face}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	fill := float32(health) / float32(maxHealth)
	if fill < 0 {
		fill = 0
	}
	barColor := healthHighColor
	if health <= maxHealth/2 {
		barColor = healthLowColor
	}

	vector.DrawFilledRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, healthEmptyColor, true)
	vector.DrawFilledRect(screen, i.X, i.Y, HealthBarWidth*fill, HealthBarHeight, barColor, true)
	vector.StrokeRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, 1, color.White, true)

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	bounds := text.BoundString(i.fontFace, healthText)
	x := int(i.X) + (HealthBarWidth-bounds.Dx())/2
	text.Draw(screen, healthText, i.fontFace, x, int(i.Y)-6, config.TextLightColor)
}

// GetHeight is the height of the label plus the bar.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return config.HUDLineHeight + HealthBarHeight
}
