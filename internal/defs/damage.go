// internal/defs/damage.go
package defs

import (
	"math"

	"go-yarn-defense/pkg/override"
)

// Uncapped stands in for "no damage limit". It is a plain int so min and
// subtraction stay total; SubSaturating never moves a value off it.
const Uncapped = math.MaxInt

// CapOrUncapped returns the enabled limit, or Uncapped.
func CapOrUncapped(limit override.Optional[int]) int {
	if v, ok := limit.Get(); ok {
		return v
	}
	return Uncapped
}

// SubSaturating returns a-b clamped at zero. Uncapped minus anything is Uncapped.
func SubSaturating(a, b int) int {
	if a == Uncapped {
		return Uncapped
	}
	if b >= a {
		return 0
	}
	return a - b
}
