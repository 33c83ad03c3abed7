package errors

import (
	"errors"
	"fmt"
)

// ErrDrift reports that rendered output differs from a reference file.
var ErrDrift = errors.New("rendered output differs from reference")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OutputError represents a failure writing rendered output to a destination.
type OutputError struct {
	Destination string
	Err         error
}

// NewOutputError constructs an OutputError.
func NewOutputError(destination string, err error) error {
	return &OutputError{Destination: destination, Err: err}
}

func (e *OutputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Destination != "" {
		return fmt.Sprintf("output error [%s]: %v", e.Destination, e.Err)
	}
	return fmt.Sprintf("output error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *OutputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
