// internal/component/render.go
package component

import "image/color"

// Renderable is drawn as a filled circle.
type Renderable struct {
	Color     color.RGBA
	Radius    float32 // world units
	Sprite    string
	HasStroke bool
}
