// Package observability provides OpenTelemetry tracing and metrics for
// transducer runs.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, &cfg.Tracing)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "transduce.run")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, &cfg.Metrics)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("transduce"))
//
// A RunContext ties both together for one run:
//
//	rc := observability.NewRunContext("transduce", runID, "sum", "fold", metrics)
//	ctx, span := rc.Start(ctx)
//	defer rc.End(ctx, span, elements, err)
//
// With tracing or metrics disabled the global no-op providers stay installed,
// so every helper is safe to call unconditionally.
package observability
