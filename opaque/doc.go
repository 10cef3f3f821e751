// Package opaque provides shared opaque handles for host values that cross
// the boundary by reference instead of by value.
//
// A Ref wraps a payload the guest runtime must never inspect. The payload is
// parked in a Table and only the numeric Handle travels across the boundary;
// the guest hands the handle back when it wants the host to act on the
// payload. Lowering a Ref is identity because the payload is opaque to the
// conversion layer.
//
// # Sharing
//
// Refs are reference counted. Clone produces a second reference to the same
// payload; Drop releases one reference. The payload is removed from the
// table, and its Drop method called if it implements Dropper, when the last
// reference is released.
//
// # Usage
//
//	table := opaque.NewTable[*Database]()
//	ref := table.Wrap(db)
//	// hand ref across the boundary; later the guest returns ref.Handle()
//	db, ok := table.Get(ref.Handle())
package opaque
