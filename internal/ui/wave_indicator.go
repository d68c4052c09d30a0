// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-yarn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave number in Roman numerals, centred on X.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	FinalColor       color.Color
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.BuildStateColor,
		FinalColor:       config.WaveStateColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
		fontFace:         face,
	}
}

func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders wave (1-based) of total. The last wave is drawn in FinalColor.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int) {
	if wave <= 0 {
		return
	}
	label := toRoman(wave) + " / " + toRoman(total)

	textColor := i.Color
	if wave == total {
		textColor = i.FinalColor
	}

	bounds := text.BoundString(i.fontFace, label)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, x, i.Y, textColor)
}
