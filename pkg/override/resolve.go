// pkg/override/resolve.go
package override

// ResolveTiered picks the effective value for a tier.
//
// Tier -1 (or an empty override list) means "no upgrades" and yields base.
// Otherwise the overrides are scanned from the tier down to tier 0 and the
// first enabled one wins. A tier past the end of the list is scanned from the
// last override. If nothing is enabled, base is returned.
func ResolveTiered[T any](level int, base T, overrides []Optional[T]) T {
	if level < 0 || len(overrides) == 0 {
		return base
	}
	start := level
	if start >= len(overrides) {
		start = len(overrides) - 1
	}
	for i := start; i >= 0; i-- {
		if overrides[i].Enabled {
			return overrides[i].Value
		}
	}
	return base
}
