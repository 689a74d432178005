package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/transduce/errors"
)

// Run statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RunContext holds observability context for one run.
type RunContext struct {
	ServiceName string
	RunID       string
	Reducer     string
	Mode        string
	StartTime   time.Time
	Metrics     *Metrics
}

// NewRunContext creates a new run context.
// If metrics is nil, metric recording is silently skipped.
func NewRunContext(serviceName, runID, reducer, mode string, metrics *Metrics) *RunContext {
	return &RunContext{
		ServiceName: serviceName,
		RunID:       runID,
		Reducer:     reducer,
		Mode:        mode,
		StartTime:   time.Now(),
		Metrics:     metrics,
	}
}

type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// Start opens the run span and records the run start metric.
func (rc *RunContext) Start(ctx context.Context, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	rc.StartTime = time.Now()
	ctx, span := StartSpan(ctx, SpanRun, append([]attribute.KeyValue{
		attribute.String(AttrServiceName, rc.ServiceName),
		attribute.String(AttrRunID, rc.RunID),
		attribute.String(AttrReducer, rc.Reducer),
		attribute.String(AttrMode, rc.Mode),
	}, attrs...)...)

	if rc.Metrics != nil {
		rc.Metrics.RecordRunStart(ctx)
	}
	return WithRunContext(ctx, rc), span
}

// End ends the span and records run-end metrics.
func (rc *RunContext) End(ctx context.Context, span trace.Span, elements int, err error) {
	duration := time.Since(rc.StartTime)
	status := StatusOK

	if err != nil {
		status = StatusError
		RecordError(span, err)
		code := string(errors.ErrCodeInternal)
		if appErr, ok := errors.AsAppError(err); ok {
			code = string(appErr.Code)
		}
		span.SetAttributes(attribute.String(AttrErrorCode, code))
		if rc.Metrics != nil {
			rc.Metrics.RecordError(ctx, code)
		}
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrElements, elements),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordRunEnd(ctx, rc.Reducer, rc.Mode, status, elements, duration)
	}
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
