// Package validation checks configuration structs before a run starts.
//
// Struct tag validation uses go-playground/validator; field names in
// messages come from mapstructure tags so they match config keys.
//
//	type SourceConfig struct {
//	    Kind string `mapstructure:"kind" validate:"required,oneof=range naturals values"`
//	}
//	err := validation.Validate(cfg)
//
// Cross-field rules go through the programmatic Validator:
//
//	v := validation.New()
//	v.Check(cfg.Limit > 0, "source.limit", "must be positive for naturals")
//	err := v.Validate()
//
// Both return *errors.AppError with code INVALID_INPUT and a "fields" detail.
package validation
