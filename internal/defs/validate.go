// internal/defs/validate.go
package defs

import (
	"fmt"

	"go-yarn-defense/pkg/hexmap"
)

// Validate checks every invariant the combat code relies on. The first broken
// invariant is returned, wrapping ErrConfigInvariant or ErrMissingAsset.
func Validate(lib *Library) error {
	if err := ValidateLayers(lib.Layers); err != nil {
		return err
	}
	for _, p := range lib.Projectiles {
		if err := validateProjectile(p, len(lib.Projectiles)); err != nil {
			return err
		}
	}
	for _, id := range lib.TowerOrder {
		if err := validateTower(lib.Towers[id]); err != nil {
			return err
		}
	}
	for _, name := range lib.LevelOrder {
		if err := validateLevel(lib.Levels[name], lib); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLayers checks that every chain terminates and that each resolved
// layer is playable.
func ValidateLayers(set *LayerSet) error {
	for i := 0; i < set.Len(); i++ {
		id := LayerID(i)
		l, err := set.Get(id)
		if err != nil {
			return err
		}
		name := l.LayerName()
		v, err := set.Resolve(id)
		if err != nil {
			return fmt.Errorf("layer %q: %w", name, err)
		}
		if v.Health < 1 {
			return fmt.Errorf("layer %q: health %d must be at least 1: %w", name, v.Health, ErrConfigInvariant)
		}
		if v.Speed < 0 {
			return fmt.Errorf("layer %q: negative speed %v: %w", name, v.Speed, ErrConfigInvariant)
		}
		if limit, ok := v.DamageAbsorptionCap.Get(); ok && (limit <= 0 || limit >= v.Health) {
			return fmt.Errorf("layer %q: absorption cap %d must be in (0, %d): %w", name, limit, v.Health, ErrConfigInvariant)
		}
		if !v.Surface.Valid() {
			return fmt.Errorf("layer %q: unknown surface %q: %w", name, v.Surface, ErrConfigInvariant)
		}
		if v.Sprite == "" {
			return fmt.Errorf("layer %q: no sprite: %w", name, ErrMissingAsset)
		}
		if effect, ok := v.DeathEffect.Get(); ok {
			if err := validateEffect(effect); err != nil {
				return fmt.Errorf("layer %q death effect: %w", name, err)
			}
		}
	}
	return nil
}

func validateEffect(e Effect) error {
	if e.Duration < 0 {
		return fmt.Errorf("negative duration %v: %w", e.Duration, ErrConfigInvariant)
	}
	if sprite, ok := e.Sprite.Get(); ok && sprite == "" {
		return fmt.Errorf("sprite enabled but empty: %w", ErrMissingAsset)
	}
	return nil
}

func validateProjectile(p *Projectile, count int) error {
	if p.TravelSpeed < 0 || p.ColliderRadius < 0 {
		return fmt.Errorf("projectile %q: negative speed or radius: %w", p.Name, ErrConfigInvariant)
	}
	if lifetime, ok := p.MaxLifetime.Get(); ok && lifetime <= 0 {
		return fmt.Errorf("projectile %q: max lifetime %v must be positive: %w", p.Name, lifetime, ErrConfigInvariant)
	}
	if !p.ShellDurability.Valid() || !p.SurfaceImpact.Valid() || !p.BelowDamageStack.Valid() {
		return fmt.Errorf("projectile %q: unknown enum value: %w", p.Name, ErrConfigInvariant)
	}
	total, capped := p.MaxTotalDamage.Value, p.MaxTotalDamage.Enabled
	if capped && total <= 0 {
		return fmt.Errorf("projectile %q: max total damage %d must be positive: %w", p.Name, total, ErrConfigInvariant)
	}
	if perHit, ok := p.MaxDamagePerCollision.Get(); ok {
		if p.ShellDurability != ShellRigid {
			return fmt.Errorf("projectile %q: per-collision cap needs a rigid shell: %w", p.Name, ErrConfigInvariant)
		}
		if perHit <= 0 || (capped && perHit >= total) {
			return fmt.Errorf("projectile %q: per-collision cap %d must be in (0, max total damage): %w", p.Name, perHit, ErrConfigInvariant)
		}
	}
	if p.Below != nil && p.ShellDurability != ShellRigid {
		return fmt.Errorf("projectile %q: below projectile needs a rigid shell: %w", p.Name, ErrConfigInvariant)
	}
	if err := checkProjectileChain(p, count); err != nil {
		return err
	}
	if aoe, ok := p.ImpactAreaOfEffect.Get(); ok {
		if err := validateAreaOfEffect(aoe); err != nil {
			return fmt.Errorf("projectile %q area of effect: %w", p.Name, err)
		}
	}
	if p.Sprite == "" {
		return fmt.Errorf("projectile %q: no sprite: %w", p.Name, ErrMissingAsset)
	}
	if effect, ok := p.DeathEffect.Get(); ok {
		if err := validateEffect(effect); err != nil {
			return fmt.Errorf("projectile %q death effect: %w", p.Name, err)
		}
	}
	return nil
}

// checkProjectileChain follows Below pointers; a chain longer than the number
// of projectiles must contain a cycle.
func checkProjectileChain(p *Projectile, limit int) error {
	steps := 0
	for cur := p.Below; cur != nil; cur = cur.Below {
		steps++
		if cur == p || steps > limit {
			return fmt.Errorf("projectile %q: below chain is cyclic: %w", p.Name, ErrConfigInvariant)
		}
	}
	return nil
}

func validateAreaOfEffect(a AreaOfEffect) error {
	if a.Radius <= 0 {
		return fmt.Errorf("radius %v must be positive: %w", a.Radius, ErrConfigInvariant)
	}
	if total, ok := a.MaxTotalDamage.Get(); ok && total <= 0 {
		return fmt.Errorf("max total damage %d must be positive: %w", total, ErrConfigInvariant)
	}
	if perCollider, ok := a.MaxDamagePerCollider.Get(); ok && perCollider <= 0 {
		return fmt.Errorf("max damage per collider %d must be positive: %w", perCollider, ErrConfigInvariant)
	}
	if !a.ImpactType.Valid() || !a.TriggerType.Valid() {
		return fmt.Errorf("unknown enum value: %w", ErrConfigInvariant)
	}
	if a.EffectPrefab == "" {
		return fmt.Errorf("no effect prefab: %w", ErrMissingAsset)
	}
	return validateEffect(a.Effect)
}

func validateTower(def *TowerDefinition) error {
	for level := -1; level <= def.MaxLevel(); level++ {
		stats := def.StatsAt(level)
		if stats.Range <= 0 {
			return fmt.Errorf("tower %q level %d: range %v must be positive: %w", def.ID, level, stats.Range, ErrConfigInvariant)
		}
		if stats.AttackSpeed <= 0 {
			return fmt.Errorf("tower %q level %d: attack speed %v must be positive: %w", def.ID, level, stats.AttackSpeed, ErrConfigInvariant)
		}
		if stats.Projectile == nil {
			return fmt.Errorf("tower %q level %d: no projectile: %w", def.ID, level, ErrConfigInvariant)
		}
		if stats.Sprite == "" {
			return fmt.Errorf("tower %q level %d: no sprite: %w", def.ID, level, ErrMissingAsset)
		}
	}
	return nil
}

func validateLevel(lvl *LevelDefinition, lib *Library) error {
	if lvl.StartHealth <= 0 {
		return fmt.Errorf("level %q: start health %d must be positive: %w", lvl.Name, lvl.StartHealth, ErrConfigInvariant)
	}
	for _, id := range lvl.Towers {
		if _, ok := lib.Towers[id]; !ok {
			return fmt.Errorf("level %q: unknown tower %q: %w", lvl.Name, id, ErrConfigInvariant)
		}
	}
	for w, wave := range lvl.Waves {
		for e, ev := range wave.Events {
			if _, ok := lib.Layers.Lookup(ev.Yarn); !ok {
				return fmt.Errorf("level %q wave %d event %d: unknown yarn %q: %w", lvl.Name, w, e, ev.Yarn, ErrConfigInvariant)
			}
			if ev.Count < 0 || ev.StartDelay < 0 || ev.DelayBetweenSpawns < 0 {
				return fmt.Errorf("level %q wave %d event %d: negative count or delay: %w", lvl.Name, w, e, ErrConfigInvariant)
			}
		}
	}
	b := lvl.Board
	if _, err := hexmap.New(b.Radius, b.Entry, b.Exit, b.Checkpoints, b.Blocked).Route(); err != nil {
		return fmt.Errorf("level %q: %v: %w", lvl.Name, err, ErrConfigInvariant)
	}
	return nil
}
