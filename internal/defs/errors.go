// internal/defs/errors.go
package defs

import "errors"

var (
	// ErrInvalidLayerVariant is returned when a layer is neither a base nor an
	// override layer, or a LayerID points outside the set.
	ErrInvalidLayerVariant = errors.New("invalid layer variant")

	// ErrConfigInvariant marks data that breaks a documented invariant
	// (caps, cycles, dangling references, unknown enum values).
	ErrConfigInvariant = errors.New("config invariant violated")

	// ErrMissingAsset marks a required sprite or effect handle that is empty.
	ErrMissingAsset = errors.New("missing required asset")
)
