package bridgeruntime

// Tuple shapes for boundary values. Go has no tuple types, so generated glue
// uses these fixed-arity structs; slot order is the field order and is
// preserved by lowering.

// Pair is a two-slot boundary tuple.
type Pair[A, B any] struct {
	A A
	B B
}

// Tuple3 is a three-slot boundary tuple.
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple4 is a four-slot boundary tuple.
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Tuple5 is a five-slot boundary tuple.
type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}
