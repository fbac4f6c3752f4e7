package n2t

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrDirectoryUnavailable indicates that the directory holding the
	// configuration file is missing or not readable and writable
	ErrDirectoryUnavailable = errors.New("directory unavailable")

	// ErrPermissionDenied indicates that the configuration file exists but cannot be read
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidConfig indicates that the configuration file is malformed
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrKeyNotFound indicates a lookup of a key the store does not hold
	ErrKeyNotFound = errors.New("key not found in config")
)

// PathError represents an error related to a specific path
type PathError struct {
	Op   string // Operation being performed
	Path string // Path that caused the error
	Err  error  // Underlying error
	Hint string // Optional hint for resolving the error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: <nil>", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ParseError reports a configuration line that is not of the form key=value
type ParseError struct {
	Path string // Configuration file
	Line int    // 1-based line number
	Text string // Offending line, untrimmed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: line %d: %q is not of the form key=value", e.Path, e.Line, e.Text)
}

// Unwrap lets errors.Is match ErrInvalidConfig
func (e *ParseError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationError represents a rejected key, value or path
type ValidationError struct {
	Field   string // Field that failed validation
	Value   string // Invalid value
	Message string // Error message
	Hint    string // Optional hint for resolving the error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewPathError creates a new PathError
func NewPathError(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Err: err}
}

// NewPathErrorWithHint creates a new PathError with a hint
func NewPathErrorWithHint(op, path string, err error, hint string) error {
	return &PathError{Op: op, Path: path, Err: err, Hint: hint}
}

// NewValidationErrorWithHint creates a new ValidationError with a hint
func NewValidationErrorWithHint(field, value, message, hint string) error {
	return &ValidationError{Field: field, Value: value, Message: message, Hint: hint}
}

// HintedError wraps an error with an actionable hint
type HintedError struct {
	Err  error
	Hint string
}

func (e *HintedError) Error() string {
	return e.Err.Error()
}

func (e *HintedError) Unwrap() error {
	return e.Err
}

// WithHint wraps an error with an actionable hint for the user
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &HintedError{Err: err, Hint: hint}
}

// HintableError is an interface for errors that can provide hints
type HintableError interface {
	error
	GetHint() string
}

// GetHint returns the hint for HintedError
func (e *HintedError) GetHint() string {
	return e.Hint
}

// GetHint returns the hint for PathError
func (e *PathError) GetHint() string {
	return e.Hint
}

// GetHint returns the hint for ValidationError
func (e *ValidationError) GetHint() string {
	return e.Hint
}

// GetHint points the user at the offending line
func (e *ParseError) GetHint() string {
	return fmt.Sprintf("Fix or remove line %d of %s, or comment it out with '#'", e.Line, e.Path)
}

// GetErrorHint extracts a hint from an error if it, or anything it wraps,
// implements HintableError
func GetErrorHint(err error) string {
	if err == nil {
		return ""
	}

	var hintableErr HintableError
	if errors.As(err, &hintableErr) {
		return hintableErr.GetHint()
	}

	return ""
}
