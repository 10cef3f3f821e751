package lower

import (
	bridgeruntime "github.com/wippyai/bridge-runtime"
	"github.com/wippyai/bridge-runtime/opaque"
)

// Fn converts a host value of shape S into its boundary shape D. A Fn is
// total: it cannot fail, and it preserves container structure while leaves
// are converted independently.
type Fn[S, D any] func(S) D

// Slice lowers a slice by lowering each element in order. A nil slice stays
// nil.
func Slice[S, D any](elem Fn[S, D]) Fn[[]S, []D] {
	return func(src []S) []D {
		if src == nil {
			return nil
		}
		out := make([]D, len(src))
		for i, e := range src {
			out[i] = elem(e)
		}
		return out
	}
}

// Option lowers an optional value. Absence (nil) is preserved; presence
// lowers the pointee into a fresh pointer.
func Option[S, D any](elem Fn[S, D]) Fn[*S, *D] {
	return func(src *S) *D {
		if src == nil {
			return nil
		}
		d := elem(*src)
		return &d
	}
}

// Opaque passes a shared opaque handle through unchanged. The payload never
// crosses the boundary, so no interior conversion applies.
func Opaque[T any]() Fn[opaque.Ref[T], opaque.Ref[T]] {
	return func(src opaque.Ref[T]) opaque.Ref[T] {
		return src
	}
}

// ZeroCopy unwraps the transport wrapper, lowers the interior, and rewraps
// it.
func ZeroCopy[S, D any](elem Fn[S, D]) Fn[bridgeruntime.ZeroCopy[S], bridgeruntime.ZeroCopy[D]] {
	return func(src bridgeruntime.ZeroCopy[S]) bridgeruntime.ZeroCopy[D] {
		return bridgeruntime.NewZeroCopy(elem(src.Unwrap()))
	}
}

// Box lowers an owned heap indirection by moving the value out and
// discarding the indirection. The pointee must already be
// boundary-representable; unlike Option, the output is the bare value.
func Box[D any]() Fn[*D, D] {
	return func(src *D) D {
		return *src
	}
}

// Array is the identity lowering for fixed-size arrays whose element type is
// already a boundary-representable leaf. Go constraints cannot name "array
// of leaf", so representability of the element is established where the rule
// chain is resolved (package resolve) rather than here; Array itself never
// recurses because a leaf element needs no per-element conversion.
func Array[A any]() Fn[A, A] {
	return func(src A) A {
		return src
	}
}
