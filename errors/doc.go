// Package errors provides the structured error type returned by the runner,
// config and validation packages.
//
// An AppError carries a machine-readable code, a human-readable message,
// optional details and the process exit code a command should terminate
// with. The transducer and pipeline packages never produce AppErrors: they
// hand back whatever their callbacks and sources raised.
package errors
