package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is handled by the loader: a missing file means defaults.
	ErrConfigNotFound = errors.New("configuration file not found")

	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrMissingRequiredField marks an empty app name, environment or telemetry service name.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue marks an out-of-range limit, duration, level or format.
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError reports the section and YAML field that failed validation.
type ValidationError struct {
	Section string // app, server, ingest, logging or telemetry
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field '%s': %v", e.Section, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(section, field string, err error) *ValidationError {
	return &ValidationError{Section: section, Field: field, Err: err}
}

// LoadError ties a read or parse failure to the file that caused it.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new load error
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}
