// Package errors provides standardized error handling for the sync layer.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Remote gateway failures
	ErrCodeTransportFailed ErrorCode = "TRANSPORT_FAILED"
	ErrCodeRemoteStatus    ErrorCode = "REMOTE_STATUS"
	ErrCodeDecodeFailed    ErrorCode = "DECODE_FAILED"
	ErrCodeAuthMissing     ErrorCode = "AUTH_MISSING"

	// Local failures
	ErrCodeStorageFailed ErrorCode = "STORAGE_FAILED"
	ErrCodeInvalidInput  ErrorCode = "INVALID_INPUT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// CodeOf extracts the error code, or empty string for foreign errors.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// NewTransportError wraps a network-level failure (DNS, refused, timeout).
func NewTransportError(op string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransportFailed,
		Message:   fmt.Sprintf("remote call %s failed", op),
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRemoteStatusError reports a non-success HTTP status from the gateway.
func NewRemoteStatusError(op string, status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeRemoteStatus,
		Message:   fmt.Sprintf("remote call %s returned status %d", op, status),
		Retryable: status >= 500,
		Metadata:  map[string]interface{}{"status": status},
		Timestamp: time.Now().UTC(),
	}
}

// NewDecodeError reports a malformed or schema-invalid remote payload.
func NewDecodeError(kind, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecodeFailed,
		Message:   fmt.Sprintf("unexpected %s payload from gateway", kind),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthMissingError reports an authenticated call attempted without credentials.
func NewAuthMissingError(op string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuthMissing,
		Message:   fmt.Sprintf("remote call %s requires credentials", op),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageError reports a persistent cache failure.
func NewStorageError(op string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageFailed,
		Message:   fmt.Sprintf("cache %s failed", op),
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputError rejects caller input before any IO is attempted.
func NewInvalidInputError(field, reason string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   fmt.Sprintf("invalid %s: %s", field, reason),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Outcome is the result of a store operation's remote-call helper. The
// operation itself succeeds either way; UsedFallback records that the
// mutation was applied locally because the remote path was absent or failed,
// and Err carries the remote failure for observability.
type Outcome struct {
	UsedFallback bool  `json:"usedFallback"`
	Err          error `json:"-"`
}

// Remote marks a mutation that round-tripped through the gateway.
func Remote() Outcome {
	return Outcome{}
}

// Fallback marks a mutation applied locally, keeping the remote failure.
func Fallback(err error) Outcome {
	return Outcome{UsedFallback: true, Err: err}
}
