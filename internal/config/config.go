// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 30.0 // pixels per world unit
	MaxDeltaTime = 0.06

	DefaultDataDir      = "assets/data"
	DefaultPlayerHealth = 100
	SaveAppName         = "yarn_defense"

	// Projectiles are culled this many world units outside the visible area.
	CullClearance = 3.0
	// Yarns count as having reached a waypoint within this many world units.
	WaypointTolerance = 0.01

	YarnRadius          = 0.35 // world units
	TowerRadius         = 0.4
	DamageFlashDuration = 0.1
	DeathEffectDuration = 0.25 // used when a layer has no death effect of its own
	TowerTurnRate       = 12.0 // how fast a turret swings toward its target

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	HUDLineHeight    = 16

	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PassableColor    = color.RGBA{70, 100, 120, 220}
	ImpassableColor  = color.RGBA{150, 70, 70, 220}
	PathColor        = color.RGBA{95, 125, 140, 230}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	CheckpointColor  = color.RGBA{230, 200, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	BuildStateColor  = color.RGBA{70, 130, 180, 220}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	DamageFlashColor = color.RGBA{255, 255, 255, 255}
	AreaEffectColor  = color.RGBA{255, 160, 40, 120}
	StrokeWidth      = 2.0

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},
		color.RGBA{220, 60, 60, 220},
		color.RGBA{194, 178, 128, 255},
	}
)
