//go:build !js

package bridgeruntime

// ForeignRef carries a reference to an object owned by the guest runtime.
// The host never inspects the object; it only holds the reference and hands
// it back across the boundary. Lowering a ForeignRef is identity.
//
// On GOOS=js the carrier is backed by a scripting value instead; see
// foreign_js.go.
type ForeignRef struct {
	handle uint64
}

// NewForeignRef wraps a guest-issued object handle.
func NewForeignRef(handle uint64) ForeignRef {
	return ForeignRef{handle: handle}
}

// Handle returns the guest-issued handle. Handle 0 is the zero ForeignRef
// and refers to no object.
func (r ForeignRef) Handle() uint64 {
	return r.handle
}

// IsValid reports whether r refers to a guest object.
func (r ForeignRef) IsValid() bool {
	return r.handle != 0
}
