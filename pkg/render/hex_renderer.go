// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"
	"strconv"

	"go-yarn-defense/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HexRenderer draws the board. The static part is rendered once into an
// offscreen image; tower outlines are drawn every frame.
type HexRenderer struct {
	hexMap       *hexmap.HexMap
	hexSize      float64
	screenWidth  int
	screenHeight int
	colors       MapColors
	fontFace     font.Face
	route        map[hexmap.Hex]struct{}
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	mapImage     *ebiten.Image
}

func NewHexRenderer(hexMap *hexmap.HexMap, route []hexmap.Hex, hexSize float64, screenWidth, screenHeight int, colors MapColors, face font.Face) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	onRoute := make(map[hexmap.Hex]struct{}, len(route))
	for _, h := range route {
		onRoute[h] = struct{}{}
	}

	r := &HexRenderer{
		hexMap:       hexMap,
		hexSize:      hexSize,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		fontFace:     face,
		route:        onRoute,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage redraws the cached board image.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	for h := range r.hexMap.Tiles {
		r.drawHex(r.mapImage, h, r.fillColor(h))
	}
	for h := range r.hexMap.Tiles {
		r.strokeHex(r.mapImage, h, LightenColor(r.fillColor(h), 40))
	}
	for i, cp := range r.hexMap.Checkpoints {
		x, y := r.center(cp)
		label := strconv.Itoa(i + 1)
		bounds := text.BoundString(r.fontFace, label)
		text.Draw(r.mapImage, label, r.fontFace, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, TextColorOn(r.colors.CheckpointColor, r.colors))
	}
}

// Draw blits the board and outlines the hexes holding towers.
func (r *HexRenderer) Draw(screen *ebiten.Image, towerHexes []hexmap.Hex) {
	screen.DrawImage(r.mapImage, nil)
	for _, h := range towerHexes {
		r.strokeHex(screen, h, r.colors.TowerHexColor)
	}
}

func (r *HexRenderer) fillColor(h hexmap.Hex) color.RGBA {
	_, onRoute := r.route[h]
	switch {
	case h == r.hexMap.Entry:
		return r.colors.EntryColor
	case h == r.hexMap.Exit:
		return r.colors.ExitColor
	case r.hexMap.IsCheckpoint(h):
		return r.colors.CheckpointColor
	case onRoute:
		return r.colors.PathColor
	case r.hexMap.Tiles[h].Passable:
		return r.colors.PassableColor
	default:
		return r.colors.ImpassableColor
	}
}

func (r *HexRenderer) center(h hexmap.Hex) (float64, float64) {
	x, y := h.ToPixel(r.hexSize)
	return x + float64(r.screenWidth)/2, y + float64(r.screenHeight)/2
}

func (r *HexRenderer) hexPath(h hexmap.Hex) vector.Path {
	x, y := r.center(h)
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := x + r.hexSize*math.Cos(angle)
		py := y + r.hexSize*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHex(target *ebiten.Image, h hexmap.Hex, c color.RGBA) {
	path := r.hexPath(h)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	tint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *HexRenderer) strokeHex(target *ebiten.Image, h hexmap.Hex, c color.RGBA) {
	path := r.hexPath(h)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	tint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func tint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
