package transducer

import "iter"

// Append collects every element it sees.
func Append[T any](acc []T, cur T) []T {
	return append(acc, cur)
}

// Sum adds every element to the accumulator.
func Sum[T Number](acc, cur T) T {
	return acc + cur
}

// Count counts elements; the running count is the accumulator.
func Count[T any](acc int, _ T) int {
	return acc + 1
}

// Fold applies r to every item from left to right, starting at seed.
func Fold[U, R any](items []U, r Reducer[U, R], seed R) R {
	acc := seed
	for _, item := range items {
		acc = r(acc, item)
	}
	return acc
}

// FoldSeq is Fold over an iter.Seq. It never returns for an infinite seq.
func FoldSeq[U, R any](seq iter.Seq[U], r Reducer[U, R], seed R) R {
	acc := seed
	for item := range seq {
		acc = r(acc, item)
	}
	return acc
}

// Transduce folds items through xf applied to r.
func Transduce[U, V, R any](items []U, xf Transducer[U, V, R], r Reducer[V, R], seed R) R {
	return Fold(items, xf(r), seed)
}
