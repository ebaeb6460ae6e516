// Package errors defines the application error taxonomy: input (I/O),
// parse (lexical/structural), alloc (arena exhaustion), lookup (document
// shape) and output failures, plus a structured SyntaxError carrying the
// byte offset and expected construct for parse failures.
package errors

import (
	"errors"
	"fmt"

	"github.com/mcncl/arenajson/internal/arena"
)

// Standard application errors. ErrArenaFull aliases the arena's own
// sentinel so callers can match exhaustion through either package.
var (
	ErrEmptyInput    = errors.New("input is empty or contains only whitespace")
	ErrFileNotFound  = errors.New("file not found")
	ErrFileEmpty     = errors.New("file is empty")
	ErrArenaFull     = arena.ErrArenaFull
	ErrNotAnObject   = errors.New("top-level value is not an object")
	ErrNotAnArray    = errors.New("value is not an array")
	ErrKeyNotFound   = errors.New("key not found in object")
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParse   ErrorType = "parse"
	ErrorTypeAlloc   ErrorType = "alloc"
	ErrorTypeLookup  ErrorType = "lookup"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// SyntaxError reports a lexical or structural parse failure with the
// byte offset it occurred at, the construct the parser expected, and the
// character it actually saw (0 at end of input).
type SyntaxError struct {
	Offset   int
	Expected string
	Actual   byte
}

// Error implements error interface
func (e *SyntaxError) Error() string {
	if e.Actual == 0 {
		return fmt.Sprintf("offset %d: expected %s, got end of input", e.Offset, e.Expected)
	}
	return fmt.Sprintf("offset %d: expected %s, got %q", e.Offset, e.Expected, e.Actual)
}

// NewSyntaxError creates a SyntaxError for the given position
func NewSyntaxError(offset int, expected string, actual byte) *SyntaxError {
	return &SyntaxError{Offset: offset, Expected: expected, Actual: actual}
}

// NewInputError creates a new error related to reading input
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParseError creates a new error related to JSON parsing
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewAllocError creates a new error related to arena allocation
func NewAllocError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeAlloc,
		Message: message,
		Err:     err,
	}
}

// NewLookupError creates a new error related to document shape lookups
func NewLookupError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeLookup,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParse:
			var syntaxErr *SyntaxError
			if errors.As(appErr.Err, &syntaxErr) {
				return fmt.Sprintf("JSON parse error: %s: %v", appErr.Message, syntaxErr)
			}
			return fmt.Sprintf("JSON parse error: %s", appErr.Message)
		case ErrorTypeAlloc:
			return fmt.Sprintf("Allocation error: %s", appErr.Message)
		case ErrorTypeLookup:
			return fmt.Sprintf("Lookup error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrArenaFull) {
		return "Error: The arena is full. Increase the capacity to parse this document."
	}
	if errors.Is(err, ErrNotAnObject) {
		return "Error: The top-level JSON value must be an object."
	}
	if errors.Is(err, ErrNotAnArray) {
		return "Error: The requested value is not an array."
	}
	if errors.Is(err, ErrKeyNotFound) {
		return "Error: The requested key was not found in the object."
	}
	if errors.Is(err, ErrDepthExceeded) {
		return "Error: The document nests deeper than the configured limit."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
