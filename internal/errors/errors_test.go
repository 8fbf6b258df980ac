package errors

import (
	"errors"
	"fmt"
	"testing"
)

// -----------------------------------------------------------------------------
// Severity Tests
// -----------------------------------------------------------------------------

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// ClientError Tests
// -----------------------------------------------------------------------------

func TestClientError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ClientError
		want string
	}{
		{
			name: "http status with body",
			err:  NewHTTPStatusError(500, "internal error"),
			want: "HTTP 500: internal error",
		},
		{
			name: "http status with empty body",
			err:  NewHTTPStatusError(502, ""),
			want: "HTTP 502: ",
		},
		{
			name: "transport failure",
			err:  NewTransportError(errors.New("connection refused")),
			want: "request failed: connection refused",
		},
		{
			name: "malformed without cause",
			err:  NewMalformedResponseError("missing itinerary", nil),
			want: "malformed response: missing itinerary",
		},
		{
			name: "malformed with cause",
			err:  NewMalformedResponseError("decode body", errors.New("unexpected EOF")),
			want: "malformed response: decode body: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"transport matches ErrTransport", NewTransportError(nil), ErrTransport, true},
		{"transport does not match ErrHTTPStatus", NewTransportError(nil), ErrHTTPStatus, false},
		{"status matches ErrHTTPStatus", NewHTTPStatusError(404, "nope"), ErrHTTPStatus, true},
		{"malformed matches ErrMalformedResponse", NewMalformedResponseError("x", nil), ErrMalformedResponse, true},
		{"matches any ClientError", NewHTTPStatusError(500, ""), &ClientError{}, true},
		{"wrapped keeps identity", fmt.Errorf("submit: %w", NewTransportError(nil)), ErrTransport, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.target); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientError_Classification(t *testing.T) {
	err := NewHTTPStatusError(503, "unavailable").WithURL("http://127.0.0.1:8000/api/plan")

	if !IsUserFacing(err) {
		t.Error("IsUserFacing() = false, want true")
	}
	if GetSeverity(err) != SeverityError {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityError)
	}
	if err.URL != "http://127.0.0.1:8000/api/plan" {
		t.Errorf("URL = %q", err.URL)
	}

	kind, ok := ClientKind(fmt.Errorf("wrapped: %w", err))
	if !ok || kind != KindHTTPStatus {
		t.Errorf("ClientKind() = %v, %v, want %v, true", kind, ok, KindHTTPStatus)
	}
	if _, ok := ClientKind(errors.New("plain")); ok {
		t.Error("ClientKind() on plain error should report false")
	}
}

func TestClientErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ClientErrorKind
		want string
	}{
		{KindTransport, "transport"},
		{KindHTTPStatus, "http_status"},
		{KindMalformed, "malformed"},
		{ClientErrorKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ClientErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// -----------------------------------------------------------------------------
// StoreError Tests
// -----------------------------------------------------------------------------

func TestStoreError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStoreError("save endpoint", cause).WithBackend("file")

	if got, want := err.Error(), "store error [backend=file]: save endpoint: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, cause) {
		t.Error("expected StoreError to unwrap to its cause")
	}
	if IsUserFacing(err) {
		t.Error("StoreError should not be user facing")
	}
	if GetSeverity(err) != SeverityWarning {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityWarning)
	}
}

// -----------------------------------------------------------------------------
// ValidationError Tests
// -----------------------------------------------------------------------------

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("must not be empty"),
			want: "validation error: must not be empty",
		},
		{
			name: "field and value",
			err:  NewValidationError("unsupported").WithField("endpoint.backend").WithValue("etcd"),
			want: "validation error [field=endpoint.backend, value=etcd]: unsupported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := NewValidationError("bad")
	if !Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
}

// -----------------------------------------------------------------------------
// Internal Error Tests
// -----------------------------------------------------------------------------

func TestInternalError_Classification(t *testing.T) {
	err := NewInternalError("internal error: boom", nil)

	if got := err.Error(); got != "internal error: boom" {
		t.Errorf("Error() = %q", got)
	}
	if IsUserFacing(err) {
		t.Error("IsUserFacing() = true, want false")
	}
	if GetSeverity(err) != SeverityCritical {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityCritical)
	}

	wrapped := fmt.Errorf("submit: %w", err)
	if GetSeverity(wrapped) != SeverityCritical {
		t.Error("severity should survive wrapping")
	}
}

func TestClassification_PlainErrors(t *testing.T) {
	plain := errors.New("plain")
	if IsUserFacing(plain) {
		t.Error("plain errors are not user-facing")
	}
	if GetSeverity(plain) != SeverityError {
		t.Errorf("GetSeverity(plain) = %v, want %v", GetSeverity(plain), SeverityError)
	}
	if GetSeverity(nil) != SeverityDebug {
		t.Errorf("GetSeverity(nil) = %v, want %v", GetSeverity(nil), SeverityDebug)
	}
}
