// Package transducer provides composable reducer transformations.
//
// A Reducer folds one element into an accumulator. A Transducer turns one
// Reducer into another, so mapping and filtering steps can be written once,
// independently of any data source or accumulator, and stacked before a
// concrete terminal reducer is supplied. A single fold over the source then
// applies every step without building intermediate slices.
//
// # Usage
//
//	inc := func(n int) int { return n + 1 }
//	even := func(n int) bool { return n%2 == 0 }
//
//	xf := transducer.Pipe(
//	    transducer.Map[int, int, int](inc),
//	    transducer.Filter[int, int](even),
//	)
//	total := transducer.Fold([]int{0, 1, 2, 3}, xf(transducer.Sum[int]), 0) // 6
//
// Pipe reads left to right: elements are mapped by inc first, then tested by
// even, then handed to the terminal reducer.
//
// # Types across stages
//
// Pipe threads a single element type through every stage. When stages change
// the element type, use Compose or the fixed-arity Pipe2, Pipe3 and Pipe4:
//
//	xf := transducer.Pipe2(
//	    transducer.Map[int, string, []string](strconv.Itoa),
//	    transducer.Filter[string, []string](func(s string) bool { return s != "0" }),
//	)
//
// # Errors
//
// Nothing in this package validates, recovers or logs. A panic raised by a
// mapping function, predicate or reducer unwinds through every layer to the
// caller of the composed reducer with its original value.
package transducer
