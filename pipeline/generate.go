package pipeline

import (
	"context"
	"math"
)

// Naturals yields 0, 1, 2, ... up to math.MaxInt.
// Bound it with Take or cancel ctx.
func Naturals() *Pipeline[int] {
	return &Pipeline[int]{
		create: func(_ context.Context) Iterator[int] {
			return &rangeIter{next: 0, step: 1, unbounded: true}
		},
	}
}

// Range yields start, start+step, ... up to but excluding end.
// A negative step counts down; a zero step yields nothing.
func Range(start, end, step int) *Pipeline[int] {
	return &Pipeline[int]{
		create: func(_ context.Context) Iterator[int] {
			return &rangeIter{next: start, end: end, step: step}
		},
	}
}

// Take yields at most n values from p and then stops pulling from it.
func Take[T any](p *Pipeline[T], n int) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeIter[T]{source: p.create(ctx), remaining: n}
		},
	}
}

type rangeIter struct {
	next      int
	end       int
	step      int
	unbounded bool
	done      bool
}

func (it *rangeIter) Next(ctx context.Context) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if it.done {
		return 0, false, nil
	}
	if !it.unbounded {
		if it.step == 0 || (it.step > 0 && it.next >= it.end) || (it.step < 0 && it.next <= it.end) {
			return 0, false, nil
		}
	}
	val := it.next
	// The next value would not fit in an int.
	if (it.step > 0 && it.next > math.MaxInt-it.step) || (it.step < 0 && it.next < math.MinInt-it.step) {
		it.done = true
	} else {
		it.next += it.step
	}
	return val, true, nil
}

func (it *rangeIter) Close() error { return nil }

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }
