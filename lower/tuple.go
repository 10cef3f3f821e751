package lower

import (
	bridgeruntime "github.com/wippyai/bridge-runtime"
)

// Tuple rules lower each slot independently and keep arity and position.
// One constructor per arity; the field access keeps these from collapsing
// into a single generic form.

// Pair lowers a two-slot tuple.
func Pair[A, AD, B, BD any](a Fn[A, AD], b Fn[B, BD]) Fn[bridgeruntime.Pair[A, B], bridgeruntime.Pair[AD, BD]] {
	return func(src bridgeruntime.Pair[A, B]) bridgeruntime.Pair[AD, BD] {
		return bridgeruntime.Pair[AD, BD]{
			A: a(src.A),
			B: b(src.B),
		}
	}
}

// Tuple3 lowers a three-slot tuple.
func Tuple3[A, AD, B, BD, C, CD any](
	a Fn[A, AD], b Fn[B, BD], c Fn[C, CD],
) Fn[bridgeruntime.Tuple3[A, B, C], bridgeruntime.Tuple3[AD, BD, CD]] {
	return func(src bridgeruntime.Tuple3[A, B, C]) bridgeruntime.Tuple3[AD, BD, CD] {
		return bridgeruntime.Tuple3[AD, BD, CD]{
			A: a(src.A),
			B: b(src.B),
			C: c(src.C),
		}
	}
}

// Tuple4 lowers a four-slot tuple.
func Tuple4[A, AD, B, BD, C, CD, D, DD any](
	a Fn[A, AD], b Fn[B, BD], c Fn[C, CD], d Fn[D, DD],
) Fn[bridgeruntime.Tuple4[A, B, C, D], bridgeruntime.Tuple4[AD, BD, CD, DD]] {
	return func(src bridgeruntime.Tuple4[A, B, C, D]) bridgeruntime.Tuple4[AD, BD, CD, DD] {
		return bridgeruntime.Tuple4[AD, BD, CD, DD]{
			A: a(src.A),
			B: b(src.B),
			C: c(src.C),
			D: d(src.D),
		}
	}
}

// Tuple5 lowers a five-slot tuple.
func Tuple5[A, AD, B, BD, C, CD, D, DD, E, ED any](
	a Fn[A, AD], b Fn[B, BD], c Fn[C, CD], d Fn[D, DD], e Fn[E, ED],
) Fn[bridgeruntime.Tuple5[A, B, C, D, E], bridgeruntime.Tuple5[AD, BD, CD, DD, ED]] {
	return func(src bridgeruntime.Tuple5[A, B, C, D, E]) bridgeruntime.Tuple5[AD, BD, CD, DD, ED] {
		return bridgeruntime.Tuple5[AD, BD, CD, DD, ED]{
			A: a(src.A),
			B: b(src.B),
			C: c(src.C),
			D: d(src.D),
			E: e(src.E),
		}
	}
}
