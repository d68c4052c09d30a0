// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/types"
	"go-yarn-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws every entity with a Renderable.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Area effects under towers, towers under yarns, projectiles on top.
	s.drawLayer(screen, sortedKeys(s.ecs.AreaEffects))
	s.drawLayer(screen, sortedKeys(s.ecs.Towers))
	s.drawLayer(screen, sortedKeys(s.ecs.Yarns))
	s.drawLayer(screen, sortedKeys(s.ecs.Projectiles))
}

// DrawRange outlines the range of tower id.
func (s *RenderSystem) DrawRange(screen *ebiten.Image, id types.EntityID) {
	tower, ok := s.ecs.Towers[id]
	pos, hasPos := s.ecs.Positions[id]
	if !ok || !hasPos {
		return
	}
	x, y := utils.WorldToScreen(pos.X, pos.Y)
	r := float32(tower.Stats.Stats().Range * config.HexSize)
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, config.RangeColor, true)
}

func (s *RenderSystem) drawLayer(screen *ebiten.Image, ids []types.EntityID) {
	for _, id := range ids {
		render, ok := s.ecs.Renderables[id]
		pos, hasPos := s.ecs.Positions[id]
		if !ok || !hasPos {
			continue
		}
		x, y := utils.WorldToScreen(pos.X, pos.Y)
		radius := float64(render.Radius)
		c := render.Color

		if area, ok := s.ecs.AreaEffects[id]; ok {
			radius = area.Effect.ScaleAt(area.Elapsed) * area.Radius
			c = fade(c, area.Elapsed, area.Effect.Duration)
		}
		if dying, ok := s.ecs.Dying[id]; ok {
			if !dying.Effect.Enabled {
				continue
			}
			effect := dying.Effect.Value
			radius *= effect.ScaleAt(dying.Elapsed)
			c = effect.Color.Or(c)
		}
		if flash, ok := s.ecs.DamageFlashes[id]; ok && flash.Timer < flash.Duration/2 {
			c = config.DamageFlashColor
		}
		if radius <= 0 {
			continue
		}

		sx, sy, sr := float32(x), float32(y), float32(radius*config.HexSize)
		if render.HasStroke {
			vector.DrawFilledCircle(screen, sx, sy, sr+float32(config.StrokeWidth), config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, sx, sy, sr, c, true)

		if tower, ok := s.ecs.Towers[id]; ok {
			ex := sx + float32(math.Cos(tower.Angle))*sr*1.4
			ey := sy + float32(math.Sin(tower.Angle))*sr*1.4
			vector.StrokeLine(screen, sx, sy, ex, ey, float32(config.StrokeWidth)*2, config.TowerStrokeColor, true)
		}
	}
}

// fade scales a premultiplied color toward transparent over duration.
func fade(c color.RGBA, elapsed, duration float64) color.RGBA {
	if duration <= 0 {
		return c
	}
	f := 1 - math.Min(1, elapsed/duration)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
