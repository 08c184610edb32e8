package capability

// Declared implements Capability for a value that carries no behavior beyond
// being identifiable. Create one with Declare or Marker.
type Declared[T any] struct {
	id    string
	value T
}

// Declare wraps value as a capability reporting id. Downcasting the result
// yields value. Builders and registries reject an empty id.
func Declare[T any](id string, value T) *Declared[T] {
	return &Declared[T]{id: id, value: value}
}

// ID returns the declared identifier.
func (d *Declared[T]) ID() string { return d.id }

// Concrete returns the wrapped value.
func (d *Declared[T]) Concrete() any { return d.value }

// Value returns the wrapped value with its static type.
func (d *Declared[T]) Value() T { return d.value }

// MarkerCapability is a bare identifier with no state.
type MarkerCapability struct {
	id string
}

// Marker returns a capability that only reports id.
func Marker(id string) *MarkerCapability {
	return &MarkerCapability{id: id}
}

// ID returns the marker identifier.
func (m *MarkerCapability) ID() string { return m.id }

// Concrete returns the marker itself.
func (m *MarkerCapability) Concrete() any { return m }
