package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Pipeline construction errors
const (
	// ErrCodeUnknownStage indicates a stage name that is not in the catalogue.
	ErrCodeUnknownStage ErrorCode = "UNKNOWN_STAGE"
	// ErrCodeUnknownReducer indicates a terminal reducer that is not in the catalogue.
	ErrCodeUnknownReducer ErrorCode = "UNKNOWN_REDUCER"
)

// Execution errors
const (
	// ErrCodeSourceFailed indicates the source stopped with an error.
	ErrCodeSourceFailed ErrorCode = "SOURCE_FAILED"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Process exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

var usageCodes = map[ErrorCode]bool{
	ErrCodeInvalidInput:   true,
	ErrCodeMissingField:   true,
	ErrCodeInvalidFormat:  true,
	ErrCodeUnknownStage:   true,
	ErrCodeUnknownReducer: true,
}

// ExitCodeFor returns the exit code a command should use for code.
func ExitCodeFor(code ErrorCode) int {
	if usageCodes[code] {
		return ExitUsage
	}
	return ExitFailure
}
