// Package config provides configuration management for the matchcast backend.
package config

import (
	"fmt"
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

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField enforces constraints spanning multiple sections.
func validateCrossField(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Leagues))
	for _, league := range cfg.Leagues {
		if seen[league.Code] {
			return fmt.Errorf("duplicate league code %q", league.Code)
		}
		seen[league.Code] = true

		for _, recent := range league.RecentSeasons {
			if len(league.Seasons) > 0 && !contains(league.Seasons, recent) {
				return fmt.Errorf("league %q: recent season %q not in seasons list", league.Code, recent)
			}
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	var b strings.Builder
	b.WriteString("configuration validation failed:")
	for _, e := range errs {
		fmt.Fprintf(&b, "\n  %s: failed %q validation", e.Namespace(), e.Tag())
	}
	return fmt.Errorf("%s", b.String())
}
