// Package errors provides centralized error definitions and error handling utilities
// for the tripplan codebase. It defines domain-specific errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - ClientError: failures talking to the planning service (transport, HTTP status,
//     malformed payload)
//   - StoreError: failures persisting or restoring the service endpoint
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid input or state
//   - internal errors (NewInternalError): bugs such as a recovered panic
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewHTTPStatusError(500, "internal error")
//
//	// With context wrapping
//	err := errors.NewStoreError("save endpoint", baseErr).WithBackend("redis")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrMalformedResponse) { ... }
//
//	var clientErr *errors.ClientError
//	if errors.As(err, &clientErr) { ... }
//
// # Error Classification
//
// Errors can be classified by severity and audience:
//   - UserFacing: errors safe to display to users (vs internal errors)
//   - Severity: Debug, Warning, Error, Critical; loggers pick the level from it
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Planning service sentinel errors
var (
	// ErrTransport indicates the request never produced an HTTP response.
	ErrTransport = New("planning service unreachable")
	// ErrHTTPStatus indicates the service answered with a non-2xx status.
	ErrHTTPStatus = New("planning service returned an error status")
	// ErrMalformedResponse indicates the response body could not be decoded
	// into a known response shape.
	ErrMalformedResponse = New("malformed planning response")
)

// Endpoint store sentinel errors
var (
	// ErrStoreUnavailable indicates the endpoint store backend could not be reached.
	ErrStoreUnavailable = New("endpoint store unavailable")
	// ErrUnknownBackend indicates an unsupported endpoint store backend name.
	ErrUnknownBackend = New("unknown endpoint store backend")
)

// General sentinel errors
var (
	// ErrBusy indicates a submission is already in flight.
	ErrBusy = New("a submission is already in flight")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// TripplanError is the base interface for all tripplan errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type TripplanError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	// This is used by errors.Is() for error comparison.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// ClientErrorKind classifies a planning service failure.
type ClientErrorKind int

const (
	// KindTransport means the request could not be sent or no response arrived.
	KindTransport ClientErrorKind = iota
	// KindHTTPStatus means the service answered with a non-2xx status.
	KindHTTPStatus
	// KindMalformed means the body was not a recognizable response payload.
	KindMalformed
)

// String returns the kind name used in logs and metrics labels.
func (k ClientErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// ClientError represents a failed call to the planning service. It carries the
// HTTP status code (0 when no response arrived) and the raw response body,
// read best-effort, so the failure panel can show both.
//
// Example:
//
//	err := errors.NewHTTPStatusError(500, "internal error")
//	fmt.Println(err) // "HTTP 500: internal error"
type ClientError struct {
	baseError
	Kind       ClientErrorKind
	StatusCode int
	Body       string
	URL        string
}

func newClientError(kind ClientErrorKind, message string, cause error) *ClientError {
	return &ClientError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
		Kind: kind,
	}
}

// NewTransportError creates a ClientError for a request that never got a response.
func NewTransportError(cause error) *ClientError {
	return newClientError(KindTransport, "request failed", cause)
}

// NewHTTPStatusError creates a ClientError for a non-2xx response.
func NewHTTPStatusError(status int, body string) *ClientError {
	e := newClientError(KindHTTPStatus, fmt.Sprintf("HTTP %d", status), nil)
	e.StatusCode = status
	e.Body = body
	return e
}

// NewMalformedResponseError creates a ClientError for an undecodable payload.
func NewMalformedResponseError(message string, cause error) *ClientError {
	return newClientError(KindMalformed, message, cause)
}

// WithURL records the request URL.
func (e *ClientError) WithURL(url string) *ClientError {
	e.URL = url
	return e
}

// WithStatus records the HTTP status and raw body that accompanied the failure.
func (e *ClientError) WithStatus(status int, body string) *ClientError {
	e.StatusCode = status
	e.Body = body
	return e
}

// Error returns the formatted error message.
func (e *ClientError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	case KindMalformed:
		if e.cause != nil {
			return fmt.Sprintf("malformed response: %s: %v", e.message, e.cause)
		}
		return fmt.Sprintf("malformed response: %s", e.message)
	default:
		return e.baseError.Error()
	}
}

// Is checks if this error matches the target.
func (e *ClientError) Is(target error) bool {
	if _, ok := target.(*ClientError); ok {
		return true
	}
	switch {
	case e.Kind == KindTransport && target == ErrTransport:
		return true
	case e.Kind == KindHTTPStatus && target == ErrHTTPStatus:
		return true
	case e.Kind == KindMalformed && target == ErrMalformedResponse:
		return true
	}
	return e.baseError.Is(target)
}

// StoreError represents a failure of the endpoint store.
//
// Example:
//
//	err := errors.NewStoreError("save endpoint", ioErr).WithBackend("file")
//	fmt.Println(err) // "store error [backend=file]: save endpoint: <io error>"
type StoreError struct {
	baseError
	Backend string
}

// NewStoreError creates a new StoreError.
func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: false,
		},
	}
}

// WithBackend adds the backend name to the error context.
func (e *StoreError) WithBackend(backend string) *StoreError {
	e.Backend = backend
	return e
}

// Error returns the formatted error message.
func (e *StoreError) Error() string {
	prefix := "store error"
	if e.Backend != "" {
		prefix = fmt.Sprintf("store error [backend=%s]", e.Backend)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *StoreError) Is(target error) bool {
	if _, ok := target.(*StoreError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("unknown backend").WithField("endpoint.backend").WithValue("etcd")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// NewInternalError creates an error for a defect rather than an operating
// condition, such as a recovered panic. It is critical and not user-facing.
func NewInternalError(message string, cause error) error {
	return &baseError{
		message:    message,
		cause:      cause,
		severity:   SeverityCritical,
		userFacing: false,
	}
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    displayToUser(err.Error())
//	} else {
//	    displayToUser("An internal error occurred")
//	    log.Error("internal error", "err", err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var tErr TripplanError
	if As(err, &tErr) {
		return tErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TripplanError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var tErr TripplanError
	if As(err, &tErr) {
		return tErr.Severity()
	}

	return SeverityError
}

// ClientKind reports the ClientErrorKind of err, or false if err is not a ClientError.
func ClientKind(err error) (ClientErrorKind, bool) {
	var clientErr *ClientError
	if As(err, &clientErr) {
		return clientErr.Kind, true
	}
	return 0, false
}
