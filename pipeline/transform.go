package pipeline

import (
	"context"

	"github.com/kbukum/transduce/transducer"
)

// Transform applies xf to every value of p and yields what reaches the end
// of the transducer chain. Values rejected by a filter stage produce nothing;
// the source is pulled again until a value survives or it is exhausted.
func Transform[U, V any](p *Pipeline[U], xf transducer.Transducer[U, V, []V]) *Pipeline[V] {
	return &Pipeline[V]{
		create: func(ctx context.Context) Iterator[V] {
			return &transformIter[U, V]{
				source: p.create(ctx),
				step:   xf(transducer.Append[V]),
			}
		},
	}
}

// Transduce folds every value of p through xf applied to r, starting at seed.
// If the source fails, the accumulator reached so far is returned with the error.
func Transduce[U, V, R any](
	ctx context.Context,
	p *Pipeline[U],
	xf transducer.Transducer[U, V, R],
	r transducer.Reducer[V, R],
	seed R,
) (R, error) {
	step := xf(r)
	iter := p.create(ctx)
	defer iter.Close()

	acc := seed
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, nil
		}
		acc = step(acc, val)
	}
}

// Scan yields the accumulator after each value of p is folded in with r.
// Every run starts again from seed.
func Scan[U, R any](p *Pipeline[U], r transducer.Reducer[U, R], seed R) *Pipeline[R] {
	return &Pipeline[R]{
		create: func(ctx context.Context) Iterator[R] {
			return &scanIter[U, R]{source: p.create(ctx), fn: r, acc: seed}
		},
	}
}

type transformIter[U, V any] struct {
	source Iterator[U]
	step   transducer.Reducer[U, []V]
	buf    []V
	pos    int
}

func (it *transformIter[U, V]) Next(ctx context.Context) (result V, ok bool, err error) {
	for {
		if it.pos < len(it.buf) {
			val := it.buf[it.pos]
			it.pos++
			return val, true, nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero V
			return zero, false, err
		}
		it.buf = it.step(it.buf[:0], in)
		it.pos = 0
	}
}

func (it *transformIter[U, V]) Close() error { return it.source.Close() }

type scanIter[U, R any] struct {
	source Iterator[U]
	fn     transducer.Reducer[U, R]
	acc    R
}

func (it *scanIter[U, R]) Next(ctx context.Context) (result R, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero R
		return zero, false, err
	}
	it.acc = it.fn(it.acc, val)
	return it.acc, true, nil
}

func (it *scanIter[U, R]) Close() error { return it.source.Close() }
