package transducer

// Pipe composes transducers so that elements flow through xfs[0] first and
// xfs[len-1] last before reaching the terminal reducer:
//
//	Pipe(t1, t2, t3)(r) == t1(t2(t3(r)))
//
// The slice is folded from the right, since each transducer needs the
// reducer built by the one after it as its downstream. Pipe() is the
// identity transducer.
func Pipe[T, R any](xfs ...Transducer[T, T, R]) Transducer[T, T, R] {
	return func(seed Reducer[T, R]) Reducer[T, R] {
		r := seed
		for i := len(xfs) - 1; i >= 0; i-- {
			r = xfs[i](r)
		}
		return r
	}
}

// Compose chains two transducers whose element types differ:
// Compose(f, g)(r) == f(g(r)). Elements pass through f, then g.
func Compose[A, B, C, R any](f Transducer[A, B, R], g Transducer[B, C, R]) Transducer[A, C, R] {
	return func(next Reducer[C, R]) Reducer[A, R] {
		return f(g(next))
	}
}

// Pipe2 is Compose under the name used by the other fixed-arity pipes.
func Pipe2[A, B, C, R any](t1 Transducer[A, B, R], t2 Transducer[B, C, R]) Transducer[A, C, R] {
	return Compose(t1, t2)
}

// Pipe3 chains three stages that may each change the element type.
func Pipe3[A, B, C, D, R any](
	t1 Transducer[A, B, R],
	t2 Transducer[B, C, R],
	t3 Transducer[C, D, R],
) Transducer[A, D, R] {
	return Compose(t1, Compose(t2, t3))
}

// Pipe4 chains four stages that may each change the element type.
func Pipe4[A, B, C, D, E, R any](
	t1 Transducer[A, B, R],
	t2 Transducer[B, C, R],
	t3 Transducer[C, D, R],
	t4 Transducer[D, E, R],
) Transducer[A, E, R] {
	return Compose(t1, Compose(t2, Compose(t3, t4)))
}
