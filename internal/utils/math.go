// internal/utils/math.go
package utils

import (
	"math"

	"go-yarn-defense/internal/config"
	"go-yarn-defense/pkg/hexmap"
)

// Lerp is standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle maps angle into [-Pi, Pi].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// HexToWorld returns the center of h in world units.
func HexToWorld(h hexmap.Hex) (x, y float64) {
	return h.ToPixel(1)
}

// WorldToScreen maps world units to screen pixels, with the world origin at
// the center of the screen.
func WorldToScreen(x, y float64) (sx, sy float64) {
	return x*config.HexSize + float64(config.ScreenWidth)/2, y*config.HexSize + float64(config.ScreenHeight)/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(sx, sy float64) (x, y float64) {
	return (sx - float64(config.ScreenWidth)/2) / config.HexSize, (sy - float64(config.ScreenHeight)/2) / config.HexSize
}

// ScreenToHex returns the hex under a screen pixel.
func ScreenToHex(sx, sy float64) hexmap.Hex {
	x, y := ScreenToWorld(sx, sy)
	return hexmap.PixelToHex(x, y, 1)
}

// OutsideView reports whether a world point lies more than clearance world
// units outside the visible area.
func OutsideView(x, y, clearance float64) bool {
	halfW := float64(config.ScreenWidth) / 2 / config.HexSize
	halfH := float64(config.ScreenHeight) / 2 / config.HexSize
	return x < -halfW-clearance || x > halfW+clearance || y < -halfH-clearance || y > halfH+clearance
}
