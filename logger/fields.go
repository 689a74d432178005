package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldStage     = "stage"
	FieldElement   = "element"
	FieldReducer   = "reducer"
	FieldMode      = "mode"
	FieldSource    = "source"
	FieldElements  = "elements"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("mode", "fold", "elements", 42))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// DurationFields adds a duration field to fields, allocating if nil.
func DurationFields(fields map[string]any, d time.Duration) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields[FieldDuration] = d.Milliseconds()
	return fields
}
