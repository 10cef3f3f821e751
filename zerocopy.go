package bridgeruntime

// ZeroCopy marks its interior for zero-copy transport across the boundary.
// The wrapper itself carries no data; it is a hint the transport layer honors
// when the interior is a byte-compatible buffer. Lowering unwraps the
// interior, lowers it, and rewraps.
type ZeroCopy[T any] struct {
	Inner T
}

// NewZeroCopy wraps v for zero-copy transport.
func NewZeroCopy[T any](v T) ZeroCopy[T] {
	return ZeroCopy[T]{Inner: v}
}

// Unwrap returns the interior value.
func (z ZeroCopy[T]) Unwrap() T {
	return z.Inner
}
