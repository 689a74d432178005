package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/transduce/config"
	"github.com/kbukum/transduce/errors"
	"github.com/kbukum/transduce/logger"
	"github.com/kbukum/transduce/observability"
	"github.com/kbukum/transduce/runner"
	"github.com/kbukum/transduce/version"
)

const (
	serviceName = "transduce"
	envPrefix   = "TRANSDUCE"
)

const (
	FlagConfig     = "config"
	FlagEnvFile    = "env-file"
	FlagOutput     = "output"
	FlagRunID      = "run-id"
	FlagSampleRate = "tracing.sample-rate"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a source through stages and reduce the result",
		Example: `  transduce run --source.end=4 --stages=map:inc,filter:even
  transduce run --source.kind=naturals --source.limit=4 --stages=map:inc,filter:even --mode=scan
  transduce run --source.kind=values --source.values=3,-1,4 --stages=remove:negative --reducer=collect -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	f := cmd.Flags()
	f.String(FlagConfig, "", "path to a config.yml (default: ./cmd/transduce/config.yml, ./config/config.yml or ./config.yml)")
	f.String(FlagEnvFile, "", "path to a .env file")
	f.StringP(FlagOutput, "o", OutputText, "result format: text or json")
	f.String(FlagRunID, "", "pin the run id (UUID); generated when empty")

	f.String("source.kind", runner.SourceRange, "element source: range, naturals or values")
	f.Int("source.start", 0, "first element of a range")
	f.Int("source.end", 0, "end of a range, exclusive")
	f.Int("source.step", 1, "range step; 0 yields nothing")
	f.Int("source.limit", 0, "stop after this many source elements; required for naturals")
	f.IntSlice("source.values", nil, "elements of a values source")

	f.StringSlice("stages", nil, "stages in order, e.g. map:inc,filter:even (see 'transduce stages')")
	f.String("reducer", runner.ReducerSum, "terminal reducer: sum, count or collect")
	f.String("mode", runner.ModeFold, "fold for the final value, scan for every intermediate value")
	f.Bool("tap", false, "log every element entering and leaving the stages at debug level")

	f.String("logging.level", "info", "log level: trace, debug, info, warn, error or disabled")
	f.String("logging.format", "console", "log format: console, pretty or json")

	f.Bool("tracing.enabled", false, "record OpenTelemetry spans")
	f.String("tracing.endpoint", "", "OTLP HTTP endpoint for spans (host:port)")
	f.Float64(FlagSampleRate, 1.0, "fraction of runs to trace")
	f.Bool("metrics.enabled", false, "export OpenTelemetry metrics")
	f.String("metrics.endpoint", "localhost:4318", "OTLP HTTP endpoint for metrics (host:port)")

	return cmd
}

func run(cmd *cobra.Command) error {
	flags := cmd.Flags()
	configFile, _ := flags.GetString(FlagConfig)
	envFile, _ := flags.GetString(FlagEnvFile)
	output, _ := flags.GetString(FlagOutput)
	if output != OutputText && output != OutputJSON {
		return errors.InvalidInput(FlagOutput, "must be text or json")
	}

	cfg := runner.DefaultConfig()
	err := config.LoadConfig(serviceName, &cfg,
		config.WithConfigFile(configFile),
		config.WithEnvFile(envFile),
		config.WithEnvPrefix(envPrefix),
		config.WithFlags(flags),
		config.WithFlagKey("run_id", FlagRunID),
		config.WithFlagKey("tracing.sample_rate", FlagSampleRate),
		config.WithDefaults(map[string]any{
			"base.name":        serviceName,
			"base.environment": "development",
		}),
	)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "could not load configuration").WithCause(err)
	}
	cfg.ApplyDefaults()

	ver := version.Get().String()
	if cfg.Tracing.ServiceVersion == "" || cfg.Tracing.ServiceVersion == "dev" {
		cfg.Tracing.ServiceVersion = ver
	}
	if cfg.Metrics.ServiceVersion == "" || cfg.Metrics.ServiceVersion == "dev" {
		cfg.Metrics.ServiceVersion = ver
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdownCtx := context.WithoutCancel(ctx)

	if cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, &cfg.Tracing)
		if err != nil {
			return errors.Internal(err)
		}
		defer func() {
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("tracer shutdown failed")
			}
		}()
	}
	if cfg.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, &cfg.Metrics)
		if err != nil {
			return errors.Internal(err)
		}
		defer func() {
			if err := mp.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("meter shutdown failed")
			}
		}()
	}

	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		return errors.Internal(err)
	}

	res, err := runner.New(log, runner.WithMetrics(metrics)).Run(ctx, &cfg)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), res, output)
}

func printResult(w io.Writer, res *runner.Result, output string) error {
	if output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Mode == runner.ModeScan {
		for _, step := range res.Steps {
			if _, err := fmt.Fprintln(w, step); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, res.Value)
	return err
}
