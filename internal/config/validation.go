package config

import (
	"fmt"
	"strings"
	"time"

	"clitemplate/internal/demo"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value interface{}) {
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// Validate checks that the default tokens are known and the pacing delays
// are not negative.
func Validate(c Config) error {
	var errs ValidationErrors

	if _, err := demo.ParseTableStyle(c.Table.DefaultStyle); err != nil {
		errs.Add("table.defaultStyle", err.Error(), c.Table.DefaultStyle)
	}
	if _, err := demo.ParseProgressKind(c.Progress.DefaultType); err != nil {
		errs.Add("progress.defaultType", err.Error(), c.Progress.DefaultType)
	}

	pacing := []struct {
		field string
		delay time.Duration
	}{
		{"progress.pacing.simple", c.Progress.Pacing.Simple},
		{"progress.pacing.custom", c.Progress.Pacing.Custom},
		{"progress.pacing.multi", c.Progress.Pacing.Multi},
	}
	for _, p := range pacing {
		if p.delay < 0 {
			errs.Add(p.field, "must not be negative", p.delay)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
