// pkg/override/optional.go
package override

import "gopkg.in/yaml.v3"

// Optional is a value that can be switched off without losing it.
// A disabled Optional still carries Value, so authoring tools can toggle it back on.
type Optional[T any] struct {
	Enabled bool
	Value   T
}

// Some returns an enabled Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Enabled: true, Value: v}
}

// None returns a disabled Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is enabled.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Enabled
}

// Or returns the value if enabled, def otherwise.
func (o Optional[T]) Or(def T) T {
	if o.Enabled {
		return o.Value
	}
	return def
}

// IsZero lets yaml `omitempty` drop disabled values.
func (o Optional[T]) IsZero() bool {
	return !o.Enabled
}

// UnmarshalYAML treats a present, non-null node as an enabled value.
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalYAML writes the bare value, or null when disabled.
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.Enabled {
		return nil, nil
	}
	return o.Value, nil
}
