package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/transduce/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// Enabled installs an SDK meter provider. Otherwise instruments are no-ops.
	Enabled bool `mapstructure:"enabled"`
	// ServiceName is the name of the service.
	ServiceName string `mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	// Insecure allows insecure connections (for development).
	Insecure bool `mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `mapstructure:"interval"`
}

// DefaultMeterConfig returns a disabled config with development defaults.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs an SDK meter provider exporting over OTLP HTTP.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Debug("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded for every run.
type Metrics struct {
	runTotal     metric.Int64Counter
	runDuration  metric.Float64Histogram
	runActive    metric.Int64UpDownCounter
	elementTotal metric.Int64Counter
	errorTotal   metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runTotal, err := meter.Int64Counter("transduce.run.total",
		metric.WithDescription("Total number of runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transduce.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("transduce.run.duration",
		metric.WithDescription("Duration of runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transduce.run.duration histogram: %w", err)
	}

	runActive, err := meter.Int64UpDownCounter("transduce.run.active",
		metric.WithDescription("Number of runs in progress"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transduce.run.active gauge: %w", err)
	}

	elementTotal, err := meter.Int64Counter("transduce.element.total",
		metric.WithDescription("Total number of source elements pulled"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transduce.element.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("transduce.error.total",
		metric.WithDescription("Total errors by code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transduce.error.total counter: %w", err)
	}

	return &Metrics{
		runTotal:     runTotal,
		runDuration:  runDuration,
		runActive:    runActive,
		elementTotal: elementTotal,
		errorTotal:   errorTotal,
	}, nil
}

// RecordRunStart increments the active run count.
func (m *Metrics) RecordRunStart(ctx context.Context) {
	m.runActive.Add(ctx, 1)
}

// RecordRunEnd decrements active runs and records the completed run.
func (m *Metrics) RecordRunEnd(ctx context.Context, reducer, mode, status string, elements int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("reducer", reducer),
		attribute.String("mode", mode),
	)
	m.runActive.Add(ctx, -1)
	m.runTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reducer", reducer),
		attribute.String("mode", mode),
		attribute.String("status", status),
	))
	m.elementTotal.Add(ctx, int64(elements), attrs)
	m.runDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordError records an error by code.
func (m *Metrics) RecordError(ctx context.Context, code string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
	))
}
