package opaque

// Ref is a shared reference to a payload parked in a Table. The guest side
// of the boundary sees only the handle; the payload stays with the host.
// The zero Ref is invalid.
type Ref[T any] struct {
	table  *Table[T]
	handle Handle
}

// Handle returns the numeric reference the guest carries.
func (r Ref[T]) Handle() Handle {
	return r.handle
}

// IsValid reports whether the reference points at a live payload.
func (r Ref[T]) IsValid() bool {
	if r.table == nil || r.handle == 0 {
		return false
	}
	_, ok := r.table.Get(r.handle)
	return ok
}

// Get retrieves the payload.
func (r Ref[T]) Get() (T, bool) {
	if r.table == nil {
		var zero T
		return zero, false
	}
	return r.table.Get(r.handle)
}

// Clone takes an additional shared reference to the same payload.
func (r Ref[T]) Clone() Ref[T] {
	if r.table == nil || !r.table.retain(r.handle) {
		return Ref[T]{}
	}
	return r
}

// Drop releases this reference. When the last reference is released the
// payload leaves the table and its Drop method runs if it implements
// Dropper.
func (r Ref[T]) Drop() {
	if r.table == nil {
		return
	}
	if value, removed := r.table.release(r.handle); removed {
		if d, ok := any(value).(Dropper); ok {
			d.Drop()
		}
	}
}
