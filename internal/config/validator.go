package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	// Register custom validation for output Mode
	_ = validate.RegisterValidation("outputmode", func(fl validator.FieldLevel) bool {
		mode := strings.ToLower(fl.Field().String())
		switch mode {
		case "", "semantic", "text", "both":
			return true
		default:
			return false
		}
	})

	validationView := struct {
		MaxInputSizeMB int    `validate:"min=1"`
		MaxDepth       int    `validate:"min=1"`
		Indent         int    `validate:"min=0,max=8"`
		OutputMode     string `validate:"omitempty,outputmode"`
		LogLevel       string `validate:"omitempty,loglevel"`
		LogFormat      string `validate:"omitempty,logformat"`
	}{
		MaxInputSizeMB: cfg.DiffConfig.MaxInputSizeMB,
		MaxDepth:       cfg.DiffConfig.MaxDepth,
		Indent:         cfg.DiffConfig.Indent,
		OutputMode:     cfg.OutputConfig.Mode,
		LogLevel:       cfg.LogConfig.LogLevel,
		LogFormat:      cfg.LogConfig.LogFormat,
	}

	err := validate.Struct(validationView)
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var messages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.Field(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				messages = append(messages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}
	return nil
}
