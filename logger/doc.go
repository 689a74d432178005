// Package logger wraps zerolog with the configuration and field conventions
// used by the transduce command and runner.
//
// # Usage
//
//	logger.Init(logger.Config{Level: "debug", Format: "json"})
//	log := logger.WithComponent("runner").WithRunID(id)
//	log.Info("run finished", logger.Fields("elements", n))
//
// The transducer and pipeline packages never log.
package logger
