package errors

import (
	"fmt"
)

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

// ValidationError captures structural problems in supplied inputs, such as a
// catalog item without an identifier or tunables outside their allowed range.
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

// CalculationError represents an unrecoverable programming error inside the
// pricing engine (nil catalog, nil assessment). Business-data problems never
// produce a CalculationError; they surface through the validation report.
type CalculationError struct {
	Stage string
	Err   error
}

// NewCalculationError constructs a CalculationError for the given engine stage.
func NewCalculationError(stage string, err error) error {
	return &CalculationError{Stage: stage, Err: err}
}

func (e *CalculationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("calculation error in %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("calculation error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *CalculationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
