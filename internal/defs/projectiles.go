// internal/defs/projectiles.go
package defs

import (
	"image/color"

	"go-yarn-defense/pkg/override"

	"gopkg.in/yaml.v3"
)

// AreaOfEffect is splash damage a projectile can set off on impact.
type AreaOfEffect struct {
	Radius               float64                `yaml:"radius"`
	MaxTotalDamage       override.Optional[int] `yaml:"maxTotalDamage,omitempty"`
	MaxDamagePerCollider override.Optional[int] `yaml:"maxDamagePerCollider,omitempty"`
	ImpactType           SurfaceImpact          `yaml:"impactType"`
	TriggerType          AreaTrigger            `yaml:"triggerType"`
	Effect               Effect                 `yaml:"effect"`
	EffectPrefab         string                 `yaml:"effectPrefab"`
}

// Projectile holds the static data for one kind of projectile.
// Live projectiles point at a Projectile and never modify it.
type Projectile struct {
	Name           string                     `yaml:"name"`
	TravelSpeed    float64                    `yaml:"travelSpeed"`
	ColliderRadius float64                    `yaml:"colliderRadius"`
	MaxLifetime    override.Optional[float64] `yaml:"maxLifetime,omitempty"`

	MaxTotalDamage        override.Optional[int] `yaml:"maxTotalDamage,omitempty"`
	ShellDurability       ShellDurability        `yaml:"shellDurability"`
	SurfaceImpact         SurfaceImpact          `yaml:"surfaceImpact"`
	MaxDamagePerCollision override.Optional[int] `yaml:"maxDamagePerCollision,omitempty"` // rigid shells only

	// BelowName names the projectile exposed once this one is spent. The loader
	// links it into Below; nil Below means there is no nested projectile.
	BelowName        string      `yaml:"belowProjectile,omitempty"`
	Below            *Projectile `yaml:"-"`
	BelowDamageStack DamageStack `yaml:"belowDamageStack,omitempty"`

	ImpactAreaOfEffect override.Optional[AreaOfEffect] `yaml:"impactAreaOfEffect,omitempty"`

	Sprite      string                    `yaml:"sprite"`
	Color       color.RGBA                `yaml:"color"`
	DeathEffect override.Optional[Effect] `yaml:"deathEffect,omitempty"`
}

// HasBelow reports whether a nested projectile is configured.
func (p *Projectile) HasBelow() bool {
	return p.Below != nil
}

// UnmarshalYAML fills in DefaultTravelSpeed and DefaultColliderRadius for keys
// that are absent. An explicit zero is kept.
func (p *Projectile) UnmarshalYAML(node *yaml.Node) error {
	type plain Projectile
	raw := plain{TravelSpeed: DefaultTravelSpeed, ColliderRadius: DefaultColliderRadius}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*p = Projectile(raw)
	return nil
}
