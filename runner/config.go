package runner

import (
	"github.com/kbukum/transduce/config"
	"github.com/kbukum/transduce/observability"
	"github.com/kbukum/transduce/validation"
)

// Source kinds.
const (
	SourceRange    = "range"
	SourceNaturals = "naturals"
	SourceValues   = "values"
)

// Modes.
const (
	ModeFold = "fold"
	ModeScan = "scan"
)

// SourceConfig selects where elements come from.
type SourceConfig struct {
	Kind   string `yaml:"kind" mapstructure:"kind" validate:"required,oneof=range naturals values"`
	Start  int    `yaml:"start" mapstructure:"start"`
	End    int    `yaml:"end" mapstructure:"end"`
	Step   int    `yaml:"step" mapstructure:"step"`
	Limit  int    `yaml:"limit" mapstructure:"limit" validate:"gte=0"`
	Values []int  `yaml:"values" mapstructure:"values"`
}

// Config describes one run.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// RunID pins the run id. Empty generates one.
	RunID   string       `yaml:"run_id" mapstructure:"run_id"`
	Source  SourceConfig `yaml:"source" mapstructure:"source"`
	Stages  []string     `yaml:"stages" mapstructure:"stages" validate:"dive,stage"`
	Reducer string       `yaml:"reducer" mapstructure:"reducer" validate:"required"`
	Mode    string       `yaml:"mode" mapstructure:"mode" validate:"required,oneof=fold scan"`
	// Tap logs every element entering and leaving the stages at debug level.
	Tap bool `yaml:"tap" mapstructure:"tap"`

	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// DefaultConfig returns a config that sums the empty range.
func DefaultConfig() Config {
	cfg := Config{
		Source:  SourceConfig{Kind: SourceRange, Step: 1},
		Reducer: ReducerSum,
		Mode:    ModeFold,
		Tracing: observability.DefaultTracerConfig("transduce"),
		Metrics: observability.DefaultMeterConfig("transduce"),
	}
	cfg.Base.Name = "transduce"
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields. Numeric source fields are left alone
// because zero is meaningful for them.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Source.Kind == "" {
		c.Source.Kind = SourceRange
	}
	if c.Reducer == "" {
		c.Reducer = ReducerSum
	}
	if c.Mode == "" {
		c.Mode = ModeFold
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = c.Base.Name
	}
	if c.Tracing.Environment == "" {
		c.Tracing.Environment = c.Base.Environment
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = c.Base.Name
	}
	if c.Metrics.Environment == "" {
		c.Metrics.Environment = c.Base.Environment
	}
}

// Validate checks struct tags first, then rules spanning several fields.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return err
	}

	v := validation.New()
	v.OptionalUUID("run_id", c.RunID)
	v.Check(c.Source.Kind != SourceNaturals || c.Source.Limit > 0,
		"source.limit", "must be positive for the naturals source")
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
