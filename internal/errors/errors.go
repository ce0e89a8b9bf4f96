package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// Configuration errors - missing or invalid configuration
	ErrorTypeConfig ErrorType = iota
	// Decode errors - a graph description document is malformed
	ErrorTypeDecode
	// Parse errors - an edge identifier does not conform to the grammar
	ErrorTypeParse
	// UnknownNode errors - an edge references a node id absent from the description
	ErrorTypeUnknownNode
	// Store errors - a failure reported by the graph store
	ErrorTypeStore
)

// Error represents a structured error with context.
// Every error in this taxonomy is fatal to the current upload run.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Is checks if this error matches the target error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// DetailedString returns a detailed error message with context
func (e *Error) DetailedString() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", typeString(e.Type), e.Message))

	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf("Caused by: %v\n", e.Cause))
	}

	if len(e.Context) > 0 {
		sb.WriteString("Context:\n")
		for k, v := range e.Context {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", k, v))
		}
	}

	return sb.String()
}

func typeString(t ErrorType) string {
	switch t {
	case ErrorTypeConfig:
		return "CONFIG"
	case ErrorTypeDecode:
		return "DECODE"
	case ErrorTypeParse:
		return "PARSE"
	case ErrorTypeUnknownNode:
		return "UNKNOWN_NODE"
	case ErrorTypeStore:
		return "STORE"
	default:
		return "UNKNOWN"
	}
}

// New creates a new error with the given type and message
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// Convenience constructors for common error types

// ConfigError creates a configuration error
func ConfigError(message string) *Error {
	return New(ErrorTypeConfig, message)
}

// ConfigErrorf creates a configuration error with formatting
func ConfigErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeConfig, fmt.Sprintf(format, args...))
}

// DecodeError wraps a description decoding error
func DecodeError(err error, message string) *Error {
	return Wrap(err, ErrorTypeDecode, message)
}

// DecodeErrorf creates a description decoding error with formatting
func DecodeErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeDecode, fmt.Sprintf(format, args...))
}

// ParseError creates an edge identifier parse error
func ParseError(message string) *Error {
	return New(ErrorTypeParse, message)
}

// ParseErrorf creates an edge identifier parse error with formatting
func ParseErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeParse, fmt.Sprintf(format, args...))
}

// UnknownNodeErrorf creates an unknown node reference error with formatting
func UnknownNodeErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeUnknownNode, fmt.Sprintf(format, args...))
}

// StoreError wraps a store error, preserving the driver error as cause
func StoreError(err error, message string) *Error {
	return Wrap(err, ErrorTypeStore, message)
}

// StoreErrorf wraps a store error with formatting
func StoreErrorf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, ErrorTypeStore, fmt.Sprintf(format, args...))
}

// GetType returns the type of an error
func GetType(err error) ErrorType {
	if err == nil {
		return ErrorTypeStore
	}

	if e, ok := err.(*Error); ok {
		return e.Type
	}

	return ErrorTypeStore
}

// IsType reports whether err carries the given error type
func IsType(err error, t ErrorType) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}
