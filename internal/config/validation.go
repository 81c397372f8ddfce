package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	}
	return false
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if cfg.Data.Source == "snapshot" && cfg.Data.SnapshotDir == "" {
		return fmt.Errorf("data.snapshot_dir is required when data.source is snapshot")
	}
	if cfg.Data.Source == "fpl_api" && cfg.Data.APIBaseURL == "" {
		return fmt.Errorf("data.api_base_url is required when data.source is fpl_api")
	}
	if cfg.Engine.StartPeriod > 0 && cfg.Engine.EndPeriod > 0 && cfg.Engine.StartPeriod > cfg.Engine.EndPeriod {
		return fmt.Errorf("engine.start_period must not exceed engine.end_period")
	}
	if sum := cfg.Engine.ConcedeWeight + cfg.Engine.AttackWeight; sum > 0 && math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("engine difficulty weights must sum to 1")
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(msgs, "; "))
}
