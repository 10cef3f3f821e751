// Package lower implements the conversion rules that take nested Go host
// values into boundary-representable form.
//
// Every rule is a constructor returning a Fn, a total conversion from one
// source shape to one boundary shape. Container rules take the Fn for their
// interior shape, so arbitrary nesting resolves by composition:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ host value ──[composed Fn]──► boundary-representable value │
//	└──────────────────────────────────────────────────────────┘
//
// # Rule Catalogue
//
//	Shape                       Rule        Behavior
//	─────────────────────────────────────────────────────────────
//	[]S                         Slice       per element, order kept
//	*S (optional)               Option      nil kept, pointee lowered
//	opaque.Ref[T]               Opaque      identity, payload untouched
//	ZeroCopy[S]                 ZeroCopy    interior lowered, rewrapped
//	[N]T, T leaf                Array       identity
//	*D (owned indirection)      Box         dereference, discard box
//	Pair/Tuple3..Tuple5         Pair..      per slot, position kept
//	primitive leaves            Leaf        identity
//	ForeignRef, Trace           Foreign, Trace  identity
//	time.Time, time.Duration    Time, Duration  identity (tag bridge_datetime)
//	uuid.UUID                   UUID        identity (tag bridge_uuid)
//
// Exactly one rule exists per shape and rules never overlap, so each layer
// of a composition is forced by the types. A composition that compiles
// cannot fail: no rule inspects its input beyond structure, allocates shared
// state, or returns an error.
//
// # Move Discipline
//
// A Fn consumes its input. Callers must not reuse a source value after
// lowering it; interior slices and references may be shared with the output.
package lower
