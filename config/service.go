package config

import (
	"fmt"

	"github.com/kbukum/transduce/logger"
)

// ServiceConfig bundles the base fields with logging. Commands embed it in
// their own config structs:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Stages []string `yaml:"stages" mapstructure:"stages"`
//	}
type ServiceConfig struct {
	Base    BaseConfig    `yaml:"base" mapstructure:"base"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the base and logging sections.
func (c *ServiceConfig) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate validates the base and logging sections.
func (c *ServiceConfig) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
