// Package pipeline provides lazy, pull-based sources that drive transducers.
//
// Pipelines are lazy: no work happens until values are pulled via Collect,
// Drain, ForEach or Transduce. Every run asks the pipeline's factory for a
// fresh Iterator, so a pipeline built from FromSlice, FromFunc, FromSeq or a
// generator can be consumed any number of times.
//
// # Sources
//
//   - FromSlice, FromSeq, FromFunc, From: wrap existing data or iterators
//   - Naturals: 0, 1, 2, ... up to math.MaxInt
//   - Range: arithmetic progression with a step
//   - Take: stop after n values (how infinite sources are bounded)
//
// # Transducers
//
//   - Transform: apply a transducer lazily and pull the surviving values
//   - Transduce: fold a pipeline through a transducer into a single value
//   - Scan: yield the running accumulator after every value
//
// # Usage
//
//	xf := transducer.Pipe(
//	    transducer.Map[int, int, int](inc),
//	    transducer.Filter[int, int](isEven),
//	)
//	sums := pipeline.Scan(pipeline.Naturals(), xf(transducer.Sum[int]), 0)
//	first, _ := pipeline.Collect(ctx, pipeline.Take(sums, 4)) // [0 2 2 6]
//
// Nothing here starts goroutines; each pull runs on the caller's goroutine
// and checks ctx before producing a value from an unbounded generator.
package pipeline
