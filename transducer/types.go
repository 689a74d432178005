package transducer

// MapFunc transforms one element into another.
type MapFunc[U, V any] func(U) V

// Predicate reports whether an element should be kept.
type Predicate[U any] func(U) bool

// Reducer folds cur into acc and returns the new accumulator.
// Reducers must be pure: any state they need lives in the accumulator.
type Reducer[U, R any] func(acc R, cur U) R

// Transducer turns a downstream Reducer of V into a Reducer of U.
// It never iterates on its own; it only wraps element handling.
type Transducer[U, V, R any] func(Reducer[V, R]) Reducer[U, R]

// Number is the set of types Sum can add.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
