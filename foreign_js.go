//go:build js

package bridgeruntime

import "syscall/js"

// ForeignRef carries a reference to an object owned by the guest runtime.
// On the js platform the guest object is a scripting value held directly;
// there is no host-side handle table. Lowering a ForeignRef is identity.
type ForeignRef struct {
	value js.Value
}

// NewForeignRef wraps a scripting value.
func NewForeignRef(value js.Value) ForeignRef {
	return ForeignRef{value: value}
}

// Value returns the underlying scripting value.
func (r ForeignRef) Value() js.Value {
	return r.value
}

// IsValid reports whether r refers to a guest object.
func (r ForeignRef) IsValid() bool {
	return !r.value.IsUndefined() && !r.value.IsNull()
}
