package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is returned when a required config file is missing.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidYAML is returned when a config file fails to parse.
	ErrInvalidYAML = errors.New("invalid YAML")
)

// LoadError wraps a failure to load one configuration file.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a LoadError for the given file.
func NewLoadError(file string, err error) error {
	return &LoadError{File: file, Err: err}
}

// FieldError is a validation failure with a dotted field path, so operators
// can locate the offending YAML key directly.
type FieldError struct {
	Path    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config field %q: %s", e.Path, e.Message)
}

// NewFieldError creates a FieldError.
func NewFieldError(path, message string) error {
	return &FieldError{Path: path, Message: message}
}
