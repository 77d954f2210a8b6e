// Package errors provides structured error types and exit codes for fuzzcollect.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (fetch failed, etc.)
	ExitUsageError   = 2 // Usage or configuration error
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindUsage
	KindConfig
	KindTransport
	KindParse
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	default:
		return "runtime"
	}
}

// CollectError is the base error type for fuzzcollect.
type CollectError struct {
	Kind    ErrorKind
	Message string
	Shard   string // Shard identifier if applicable
	Cause   error  // Underlying error
}

func (e *CollectError) Error() string {
	msg := e.Message
	if e.Shard != "" {
		msg = fmt.Sprintf("[shard %s] %s", e.Shard, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CollectError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *CollectError) ExitCode() int {
	switch e.Kind {
	case KindUsage, KindConfig:
		return ExitUsageError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *CollectError {
	return &CollectError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Usage creates a new usage error.
func Usage(message string) *CollectError {
	return &CollectError{
		Kind:    KindUsage,
		Message: message,
	}
}

// Usagef creates a new usage error with formatting.
func Usagef(format string, args ...interface{}) *CollectError {
	return Usage(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *CollectError {
	return &CollectError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *CollectError {
	return Config(fmt.Sprintf(format, args...))
}

// Transport creates an error for a failed fetch of uri.
func Transport(uri string, cause error) *CollectError {
	return &CollectError{
		Kind:    KindTransport,
		Message: fmt.Sprintf("fetch %s", uri),
		Cause:   cause,
	}
}

// ShardParse creates an error for a shard whose output could not be parsed.
func ShardParse(shard, message string) *CollectError {
	return &CollectError{
		Kind:    KindParse,
		Shard:   shard,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *CollectError {
	return &CollectError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// IsKind reports whether err or any error it wraps is a CollectError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *CollectError
	if stderrors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *CollectError
	if stderrors.As(err, &ce) {
		return ce.ExitCode()
	}
	return ExitRuntimeError
}
