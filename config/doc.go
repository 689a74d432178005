// Package config loads layered configuration for the transduce command.
//
// Values are resolved with the following precedence, highest first:
// explicitly set flags, environment variables (optionally read from a .env
// file), config.yml, flag defaults and registered defaults.
//
// # Usage
//
//	var cfg runner.Config
//	err := config.LoadConfig("transduce", &cfg,
//	    config.WithFlags(fs),
//	    config.WithEnvPrefix("TRANSDUCE"),
//	)
//
// With the TRANSDUCE prefix, TRANSDUCE_SOURCE_LIMIT overrides source.limit.
package config
