// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-yarn-defense/internal/config"
	"go-yarn-defense/internal/entity"
	"go-yarn-defense/internal/event"
	"go-yarn-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 130
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 220
)

// Button is a clickable rectangle with a label.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel slides up from the bottom and describes the selected tower or yarn.
type InfoPanel struct {
	IsVisible       bool
	TargetEntity    types.EntityID
	fontFace        font.Face
	currentY        float64
	targetY         float64
	UpgradeButton   Button
	eventDispatcher *event.Dispatcher
}

func NewInfoPanel(face font.Face, dispatcher *event.Dispatcher) *InfoPanel {
	return &InfoPanel{
		fontFace:        face,
		currentY:        config.ScreenHeight,
		targetY:         config.ScreenHeight,
		eventDispatcher: dispatcher,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether the screen point is on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update animates the panel. It reports whether the click, if any, was
// consumed by a panel button.
func (p *InfoPanel) Update(ecs *entity.ECS) bool {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}

	if _, isTower := ecs.Towers[p.TargetEntity]; !isTower && p.TargetEntity != 0 {
		if _, isYarn := ecs.Yarns[p.TargetEntity]; !isYarn {
			p.Hide()
		}
	}

	if !p.IsVisible || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	if _, isTower := ecs.Towers[p.TargetEntity]; isTower && image.Pt(x, y).In(p.UpgradeButton.Rect) {
		p.eventDispatcher.Dispatch(event.Event{Type: event.UpgradeRequested, Data: event.TowerData{ID: p.TargetEntity}})
		return true
	}
	return p.Contains(x, y)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	x, y := panelRect.Min.X+15, panelRect.Min.Y+25
	if _, ok := ecs.Towers[p.TargetEntity]; ok {
		p.drawTowerInfo(screen, ecs, x, y)
		p.drawUpgradeButton(screen, panelRect, ecs)
	} else if _, ok := ecs.Yarns[p.TargetEntity]; ok {
		p.drawYarnInfo(screen, ecs, x, y)
	}
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, ecs *entity.ECS, x, y int) {
	tower := ecs.Towers[p.TargetEntity]
	def := tower.Stats.Definition()
	stats := tower.Stats.Stats()
	text.Draw(screen, fmt.Sprintf("%s  (level %d of %d)", def.Name, tower.Stats.Level()+2, def.MaxLevel()+2), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.1f", stats.Range), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Attack speed: %.2f/s", stats.AttackSpeed), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	y += lineHeight
	if stats.Projectile != nil {
		proj := stats.Projectile
		text.Draw(screen, "Projectile: "+proj.Name, p.fontFace, x, y, config.TextLightColor)
		if dmg, ok := proj.MaxTotalDamage.Get(); ok {
			text.Draw(screen, fmt.Sprintf("Damage: %d", dmg), p.fontFace, x+columnSpacing, y, config.TextLightColor)
		} else {
			text.Draw(screen, "Damage: unlimited", p.fontFace, x+columnSpacing, y, config.TextLightColor)
		}
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Shell: %s, impact: %s", proj.ShellDurability, proj.SurfaceImpact), p.fontFace, x, y, config.TextLightColor)
	}
}

func (p *InfoPanel) drawUpgradeButton(screen *ebiten.Image, panelRect image.Rectangle, ecs *entity.ECS) {
	tower := ecs.Towers[p.TargetEntity]
	btnWidth, btnHeight := 150, 36
	p.UpgradeButton.Rect = image.Rect(
		panelRect.Max.X-btnWidth-20,
		panelRect.Max.Y-btnHeight-20,
		panelRect.Max.X-20,
		panelRect.Max.Y-20,
	)

	btnColor := color.RGBA{R: 180, G: 140, B: 20, A: 255}
	p.UpgradeButton.Text = "Upgrade"
	if tower.Stats.Level() >= tower.Stats.Definition().MaxLevel() {
		btnColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
		p.UpgradeButton.Text = "Max level"
	}
	vector.DrawFilledRect(screen, float32(p.UpgradeButton.Rect.Min.X), float32(p.UpgradeButton.Rect.Min.Y), float32(btnWidth), float32(btnHeight), btnColor, true)

	textBounds := text.BoundString(p.fontFace, p.UpgradeButton.Text)
	textX := p.UpgradeButton.Rect.Min.X + (btnWidth-textBounds.Dx())/2
	textY := p.UpgradeButton.Rect.Min.Y + (btnHeight-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, p.UpgradeButton.Text, p.fontFace, textX, textY, color.White)
}

func (p *InfoPanel) drawYarnInfo(screen *ebiten.Image, ecs *entity.ECS, x, y int) {
	yarn := ecs.Yarns[p.TargetEntity]
	name := "?"
	if layer, err := yarn.Layers.Get(yarn.Layer); err == nil {
		name = layer.LayerName()
	}
	text.Draw(screen, "Yarn: "+name, p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Layer health: %d / %d", yarn.LayerHealth, yarn.Values.Health), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Speed: %.2f", yarn.Values.Speed), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	y += lineHeight
	if stacked, err := yarn.Layers.StackedHealth(yarn.Layer); err == nil {
		text.Draw(screen, fmt.Sprintf("Leak damage: %d", stacked), p.fontFace, x, y, config.TextLightColor)
	}
	text.Draw(screen, fmt.Sprintf("Surface: %s", yarn.Values.Surface), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	if limit, ok := yarn.Values.DamageAbsorptionCap.Get(); ok {
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Absorbs at most %d per hit", limit), p.fontFace, x, y, config.TextLightColor)
	}
}
