// internal/defs/types.go
package defs

// Surface defines whether damage that pops a layer may continue into the layer below.
type Surface string

const (
	SurfacePenetrable   Surface = "PENETRABLE"
	SurfaceImpenetrable Surface = "IMPENETRABLE"
)

func (s Surface) Valid() bool {
	return s == SurfacePenetrable || s == SurfaceImpenetrable
}

// SurfaceImpact defines whether a hit may damage more than the outermost layer.
type SurfaceImpact string

const (
	ImpactSurfaceOnly SurfaceImpact = "SURFACE_ONLY"
	ImpactPenetrating SurfaceImpact = "PENETRATING"
)

func (s SurfaceImpact) Valid() bool {
	return s == ImpactSurfaceOnly || s == ImpactPenetrating
}

// ShellDurability defines whether a projectile survives a hit that leaves it with damage.
type ShellDurability string

const (
	ShellRigid   ShellDurability = "RIGID"   // keeps flying while damage is left
	ShellFragile ShellDurability = "FRAGILE" // always breaks on impact
)

func (s ShellDurability) Valid() bool {
	return s == ShellRigid || s == ShellFragile
}

// DamageStack defines whether a below projectile keeps hitting the same target
// in the collision that exposed it.
type DamageStack string

const (
	StackCanDamageWithBoth DamageStack = "CAN_DAMAGE_WITH_BOTH"
	StackOnlyOutermost     DamageStack = "ONLY_OUTERMOST"
)

func (s DamageStack) Valid() bool {
	return s == StackCanDamageWithBoth || s == StackOnlyOutermost
}

// AreaTrigger defines on which impacts an area of effect goes off.
type AreaTrigger string

const (
	TriggerFirstImpact AreaTrigger = "FIRST_IMPACT"
	TriggerAllImpacts  AreaTrigger = "ALL_IMPACTS"
	TriggerLastImpact  AreaTrigger = "LAST_IMPACT"
)

func (t AreaTrigger) Valid() bool {
	switch t {
	case TriggerFirstImpact, TriggerAllImpacts, TriggerLastImpact:
		return true
	}
	return false
}
