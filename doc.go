// Package bridgeruntime provides the boundary type surface for lowering Go
// host values into the form a foreign guest runtime can receive.
//
// When generated bridge glue hands a return value, callback argument, or
// stream element to the guest, every layer of the value must already be in
// boundary-representable form. This module supplies that lowering as a closed
// set of composable rules, resolved entirely at compile time.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	bridgeruntime/       Root package with boundary shape types and the Leaf constraint
//	├── lower/           The conversion rule catalogue composed by generated glue
//	├── opaque/          Shared opaque handles whose payload never crosses the boundary
//	├── resolve/         Static rule resolution and expression emission for generators
//	├── errors/          Structured error types for resolution diagnostics
//	└── cmd/explain/     Interactive shape-resolution inspector
//
// # Boundary Shapes
//
// A value is boundary-representable when it is built from this closed set:
//
//   - Primitive leaves: bool, fixed-width integers, uint, floats, string, Unit
//   - Slices and pointers (optional values) of representable shapes
//   - Fixed-size arrays of primitive leaves
//   - Tuples of arity 2 through 5 (Pair, Tuple3, Tuple4, Tuple5)
//   - Shared opaque handles (opaque.Ref)
//   - Zero-copy transport wrappers (ZeroCopy)
//   - The platform foreign-object carrier (ForeignRef) and Trace diagnostics
//
// Optional leaf types (time.Time, time.Duration, uuid.UUID) are enabled with
// the bridge_datetime and bridge_uuid build tags. On GOOS=js the foreign
// carrier is backed by a scripting value instead of a native handle.
//
// # Quick Start
//
// Generated glue composes one rule per structural layer and applies the
// result:
//
//	rule := lower.Slice(lower.Option(lower.Pair(
//	    lower.Leaf[uint8](),
//	    lower.Leaf[string](),
//	)))
//	out := rule(values) // []*Pair[uint8, string] lowered element by element
//
// A composition that mixes shapes incorrectly does not compile; a composition
// that compiles cannot fail at runtime.
package bridgeruntime
