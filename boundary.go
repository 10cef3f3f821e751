package bridgeruntime

// Unit is the empty boundary value. It lowers to itself and carries no data.
type Unit struct{}

// Leaf is the closed set of primitive types that cross the boundary
// unchanged. Every other boundary-representable shape is built from these
// leaves by the container rules in package lower.
//
// The set is deliberately enumerated rather than open: a shape outside it has
// no lowering rule and any attempt to lower it is rejected by the compiler.
type Leaf interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64 |
		~string |
		Unit
}
