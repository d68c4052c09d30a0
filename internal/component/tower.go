// internal/component/tower.go
package component

import (
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/pkg/hexmap"
)

type Tower struct {
	DefID    string
	Hex      hexmap.Hex
	Stats    *StatStack
	Cooldown float64 // seconds until the next shot
	Angle    float64 // turret heading in radians, visual only
}

// StatStack tracks a tower's upgrade level and the stats resolved for it.
type StatStack struct {
	def      *defs.TowerDefinition
	level    int
	resolved defs.TowerStats
}

// NewStatStack starts at level -1, i.e. the base stats.
func NewStatStack(def *defs.TowerDefinition) *StatStack {
	return &StatStack{
		def:      def,
		level:    -1,
		resolved: def.StatsAt(-1),
	}
}

func (s *StatStack) Level() int                        { return s.level }
func (s *StatStack) Stats() defs.TowerStats            { return s.resolved }
func (s *StatStack) Definition() *defs.TowerDefinition { return s.def }

// SetLevel clamps level to the available tiers and re-resolves every stat.
// changed is false when the clamped level equals the current one.
func (s *StatStack) SetLevel(level int) (stats defs.TowerStats, changed bool) {
	level = s.def.ClampLevel(level)
	if level == s.level {
		return s.resolved, false
	}
	s.level = level
	s.resolved = s.def.StatsAt(level)
	return s.resolved, true
}
