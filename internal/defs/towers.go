// internal/defs/towers.go
package defs

import (
	"image/color"

	"go-yarn-defense/pkg/override"
)

// BaseStats are the tower values used before any upgrade is bought.
type BaseStats struct {
	Range          float64     `yaml:"range"`
	AttackSpeed    float64     `yaml:"attackSpeed"` // shots per second
	Color          color.RGBA  `yaml:"color"`
	Sprite         string      `yaml:"sprite"`
	ProjectileName string      `yaml:"projectile"`
	Projectile     *Projectile `yaml:"-"`
}

// OverridableStats is one upgrade tier. Every field is optional; a disabled
// field inherits from the closest lower tier that sets it, then from BaseStats.
type OverridableStats struct {
	Range          override.Optional[float64]     `yaml:"range,omitempty"`
	AttackSpeed    override.Optional[float64]     `yaml:"attackSpeed,omitempty"`
	Sprite         override.Optional[string]      `yaml:"sprite,omitempty"`
	Color          override.Optional[color.RGBA]  `yaml:"color,omitempty"`
	ProjectileName override.Optional[string]      `yaml:"projectile,omitempty"`
	Projectile     override.Optional[*Projectile] `yaml:"-"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID    string             `yaml:"id"`
	Name  string             `yaml:"name"`
	Base  BaseStats          `yaml:"base"`
	Tiers []OverridableStats `yaml:"tiers"`
}

// TowerStats are the resolved values for one level.
type TowerStats struct {
	Range       float64
	AttackSpeed float64
	Color       color.RGBA
	Sprite      string
	Projectile  *Projectile
}

// ShootDelay is the pause between two shots.
func (s TowerStats) ShootDelay() float64 {
	if s.AttackSpeed <= 0 {
		return 0
	}
	return 1 / s.AttackSpeed
}

// ClampLevel bounds level to [-1, len(Tiers)-1].
func (d *TowerDefinition) ClampLevel(level int) int {
	if level < -1 {
		level = -1
	}
	if level >= len(d.Tiers) {
		level = len(d.Tiers) - 1
	}
	return level
}

// MaxLevel is the highest tier index, or -1 when the tower has no tiers.
func (d *TowerDefinition) MaxLevel() int {
	return len(d.Tiers) - 1
}

// StatsAt resolves every stat for level.
func (d *TowerDefinition) StatsAt(level int) TowerStats {
	n := len(d.Tiers)
	ranges := make([]override.Optional[float64], n)
	speeds := make([]override.Optional[float64], n)
	sprites := make([]override.Optional[string], n)
	colors := make([]override.Optional[color.RGBA], n)
	projectiles := make([]override.Optional[*Projectile], n)
	for i, tier := range d.Tiers {
		ranges[i] = tier.Range
		speeds[i] = tier.AttackSpeed
		sprites[i] = tier.Sprite
		colors[i] = tier.Color
		projectiles[i] = tier.Projectile
	}
	return TowerStats{
		Range:       override.ResolveTiered(level, d.Base.Range, ranges),
		AttackSpeed: override.ResolveTiered(level, d.Base.AttackSpeed, speeds),
		Sprite:      override.ResolveTiered(level, d.Base.Sprite, sprites),
		Color:       override.ResolveTiered(level, d.Base.Color, colors),
		Projectile:  override.ResolveTiered(level, d.Base.Projectile, projectiles),
	}
}
