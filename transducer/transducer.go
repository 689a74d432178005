package transducer

// Map returns a transducer that applies fn to every element before handing
// it downstream: Map(fn)(r)(acc, cur) == r(acc, fn(cur)).
func Map[U, V, R any](fn MapFunc[U, V]) Transducer[U, V, R] {
	return func(next Reducer[V, R]) Reducer[U, R] {
		return func(acc R, cur U) R {
			return next(acc, fn(cur))
		}
	}
}

// Filter returns a transducer that forwards only elements satisfying p.
// Rejected elements leave the accumulator untouched and never reach the
// downstream reducer. p runs exactly once per element.
func Filter[U, R any](p Predicate[U]) Transducer[U, U, R] {
	return func(next Reducer[U, R]) Reducer[U, R] {
		return func(acc R, cur U) R {
			if p(cur) {
				return next(acc, cur)
			}
			return acc
		}
	}
}

// Remove is Filter with the predicate negated.
func Remove[U, R any](p Predicate[U]) Transducer[U, U, R] {
	return Filter[U, R](func(u U) bool { return !p(u) })
}

// Tap calls fn with each element, then forwards the element unchanged.
// Use it for tracing a pipeline without altering what flows through it.
func Tap[U, R any](fn func(U)) Transducer[U, U, R] {
	return func(next Reducer[U, R]) Reducer[U, R] {
		return func(acc R, cur U) R {
			fn(cur)
			return next(acc, cur)
		}
	}
}

// Identity returns the transducer that hands back its downstream reducer.
func Identity[T, R any]() Transducer[T, T, R] {
	return func(next Reducer[T, R]) Reducer[T, R] {
		return next
	}
}
