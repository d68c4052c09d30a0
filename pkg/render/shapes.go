// pkg/render/shapes.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage *ebiten.Image

func fillSource() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// FillPath fills an arbitrary closed path.
func FillPath(dst *ebiten.Image, path *vector.Path, c color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	tint(vs, toRGBA(c))
	dst.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokePath outlines a path.
func StrokePath(dst *ebiten.Image, path *vector.Path, width float32, c color.Color) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	tint(vs, toRGBA(c))
	dst.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Triangle builds a closed three-point path.
func Triangle(x1, y1, x2, y2, x3, y3 float32) *vector.Path {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()
	return &path
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
