package runner

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/transduce/errors"
	"github.com/kbukum/transduce/logger"
	"github.com/kbukum/transduce/observability"
	"github.com/kbukum/transduce/pipeline"
	"github.com/kbukum/transduce/transducer"
)

// Terminal reducers.
const (
	ReducerSum     = "sum"
	ReducerCount   = "count"
	ReducerCollect = "collect"
)

// Reducers lists the terminal reducers a run can end in.
func Reducers() []string {
	return []string{ReducerSum, ReducerCount, ReducerCollect}
}

// Result is the outcome of one run.
type Result struct {
	RunID   string `json:"run_id"`
	Mode    string `json:"mode"`
	Reducer string `json:"reducer"`
	// Value is the final accumulator. In scan mode it equals the last step,
	// or the seed when nothing was accumulated.
	Value any `json:"value"`
	// Steps holds every intermediate accumulator in scan mode.
	Steps []any `json:"steps,omitempty"`
	// Elements counts source elements pulled into the stages.
	Elements int           `json:"elements"`
	Duration time.Duration `json:"duration"`
}

// Runner executes configured runs.
type Runner struct {
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithMetrics records run metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// New creates a Runner logging through log. A nil log discards output.
func New(log *logger.Logger, opts ...Option) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	r := &Runner{log: log.WithComponent("runner")}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes cfg with a Runner built from log.
func Run(ctx context.Context, cfg *Config, log *logger.Logger) (*Result, error) {
	return New(log).Run(ctx, cfg)
}

// Run validates cfg, builds the source and stages, then folds or scans.
// Panics raised by stage functions are not recovered.
func (r *Runner) Run(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	ctx = logger.ContextWithRunID(ctx, runID)
	log := r.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldReducer, cfg.Reducer,
		logger.FieldMode, cfg.Mode,
		logger.FieldSource, cfg.Source.Kind,
	))

	rc := observability.NewRunContext(cfg.Base.Name, runID, cfg.Reducer, cfg.Mode, r.metrics)
	ctx, span := rc.Start(ctx,
		attribute.String(observability.AttrSource, cfg.Source.Kind),
		attribute.String(observability.AttrStages, strings.Join(cfg.Stages, ",")),
	)
	log.Debug("run started", logger.Fields("stages", cfg.Stages))

	res := &Result{RunID: runID, Mode: cfg.Mode, Reducer: cfg.Reducer}
	src := buildSource(cfg.Source)

	var err error
	switch cfg.Reducer {
	case ReducerSum:
		err = execute[int](ctx, log, cfg, src, transducer.Sum[int], 0, res)
	case ReducerCount:
		err = execute[int](ctx, log, cfg, src, transducer.Count[int], 0, res)
	case ReducerCollect:
		err = execute[[]int](ctx, log, cfg, src, transducer.Append[int], []int{}, res)
	default:
		err = errors.UnknownReducer(cfg.Reducer)
	}

	rc.End(ctx, span, res.Elements, err)
	res.Duration = rc.Duration()
	if err != nil {
		log.WithError(err).Error("run failed", logger.Fields(logger.FieldElements, res.Elements))
		return res, err
	}
	log.Info("run finished", logger.DurationFields(
		logger.Fields(logger.FieldElements, res.Elements), res.Duration))
	return res, nil
}

// buildSource returns the configured source, cut at the limit when one is set.
func buildSource(sc SourceConfig) *pipeline.Pipeline[int] {
	var src *pipeline.Pipeline[int]
	switch sc.Kind {
	case SourceNaturals:
		src = pipeline.Naturals()
	case SourceValues:
		src = pipeline.FromSlice(sc.Values)
	default:
		src = pipeline.Range(sc.Start, sc.End, sc.Step)
	}
	if sc.Limit > 0 {
		src = pipeline.Take(src, sc.Limit)
	}
	return src
}

// execute wraps the configured stages with counting and optional logging
// taps, then drives the source in the configured mode.
func execute[R any](
	ctx context.Context,
	log *logger.Logger,
	cfg *Config,
	src *pipeline.Pipeline[int],
	reduce transducer.Reducer[int, R],
	seed R,
	res *Result,
) error {
	_, span := observability.StartSpan(ctx, observability.SpanBuild,
		attribute.String(observability.AttrStages, strings.Join(cfg.Stages, ",")))
	stages, err := ParseStages[R](cfg.Stages)
	if err != nil {
		observability.RecordError(span, err)
		span.End()
		return err
	}
	span.End()

	xf := transducer.Pipe(
		// Elements is an observation of the run, not part of the accumulator.
		transducer.Tap[int, R](func(x int) {
			res.Elements++
			if cfg.Tap {
				log.Debug("element in", logger.Fields(logger.FieldElement, x))
			}
		}),
		stages,
		transducer.Tap[int, R](func(x int) {
			if cfg.Tap {
				log.Debug("element out", logger.Fields(logger.FieldElement, x))
			}
		}),
	)

	switch cfg.Mode {
	case ModeScan:
		steps, err := pipeline.Collect(ctx, pipeline.Scan(src, xf(reduce), seed))
		res.Steps = make([]any, len(steps))
		for i, s := range steps {
			res.Steps[i] = s
		}
		res.Value = seed
		if len(steps) > 0 {
			res.Value = steps[len(steps)-1]
		}
		if err != nil {
			return errors.SourceFailed(cfg.Source.Kind, err)
		}
	default:
		acc, err := pipeline.Transduce(ctx, src, xf, reduce, seed)
		res.Value = acc
		if err != nil {
			return errors.SourceFailed(cfg.Source.Kind, err)
		}
	}
	return nil
}
