package lower

import (
	bridgeruntime "github.com/wippyai/bridge-runtime"
)

// Leaf is the identity lowering for the closed primitive set. A type outside
// the bridgeruntime.Leaf union has no leaf rule and fails to compile here.
func Leaf[T bridgeruntime.Leaf]() Fn[T, T] {
	return func(src T) T {
		return src
	}
}

// Foreign is the identity lowering for the platform foreign-object carrier.
// The carrier already lives on the guest side; the host only hands it back.
func Foreign() Fn[bridgeruntime.ForeignRef, bridgeruntime.ForeignRef] {
	return func(src bridgeruntime.ForeignRef) bridgeruntime.ForeignRef {
		return src
	}
}

// Trace is the identity lowering for captured stack traces.
func Trace() Fn[bridgeruntime.Trace, bridgeruntime.Trace] {
	return func(src bridgeruntime.Trace) bridgeruntime.Trace {
		return src
	}
}
