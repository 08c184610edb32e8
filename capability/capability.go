// Package capability defines the contract providers use to declare named,
// runtime-typed capabilities to a host. Hosts hold capabilities as opaque
// interface values, look them up by identifier and recover the concrete type
// with As or FindAs.
package capability

// Capability is one unit of declared behavior a provider exposes.
type Capability interface {
	// ID returns the stable identifier of the capability. It never changes for
	// the lifetime of the value.
	ID() string

	// Concrete returns the value callers should downcast. Wrappers return the
	// value they wrap; everything else returns itself.
	Concrete() any
}

// List is an ordered sequence of capability references. Elements may alias the
// same underlying capability.
type List []Capability

// Find returns the first capability whose ID equals id.
func (l List) Find(id string) (Capability, bool) {
	for _, c := range l {
		if c != nil && c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// Has reports whether the list contains a capability with the given ID.
func (l List) Has(id string) bool {
	_, ok := l.Find(id)
	return ok
}

// IDs returns the identifiers in list order.
func (l List) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, c := range l {
		if c != nil {
			ids = append(ids, c.ID())
		}
	}
	return ids
}

// Clone returns a copy of the list. The capabilities themselves are shared.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// As returns the concrete value of c as T. The second result is false when c
// is nil or its concrete value is not a T.
func As[T any](c Capability) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	v, ok := c.Concrete().(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// FindAs looks up the first capability with the given ID and downcasts it to T.
func FindAs[T any](l List, id string) (T, bool) {
	c, ok := l.Find(id)
	if !ok {
		var zero T
		return zero, false
	}
	return As[T](c)
}

// All returns every capability in the list whose concrete value is a T.
func All[T any](l List) []T {
	var out []T
	for _, c := range l {
		if v, ok := As[T](c); ok {
			out = append(out, v)
		}
	}
	return out
}
