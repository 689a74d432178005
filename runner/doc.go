// Package runner builds and executes an integer transducer pipeline from
// configuration.
//
// A run pulls from a source (a range, the naturals or a fixed list), passes
// every element through the configured stages and either folds the result
// into one value or yields every intermediate accumulator:
//
//	cfg := runner.DefaultConfig()
//	cfg.Source = runner.SourceConfig{Kind: runner.SourceRange, End: 4, Step: 1}
//	cfg.Stages = []string{"map:inc", "filter:even"}
//	res, err := runner.New(log).Run(ctx, &cfg)
//	// res.Value == 6
//
// Stages are named "<kind>:<name>" where kind is map, filter or remove and
// name comes from the catalogue returned by StageNames.
package runner
