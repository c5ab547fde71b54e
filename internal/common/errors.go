package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline failure taxonomy. Every error escaping a pipeline stage is wrapped
// with exactly one of these sentinels before it reaches the job record.
var (
	// ErrMalformedInput: zero usable rows after normalization. Terminal.
	ErrMalformedInput = errors.New("malformed input")
	// ErrCollaborator: the enrichment call failed or returned an unusable response. Retryable.
	ErrCollaborator = errors.New("enrichment collaborator error")
	// ErrStorage: a job/result store write failed. Retryable.
	ErrStorage = errors.New("storage error")
	// ErrAdmissionConflict: a second admission for a user with an active job. Not a job failure.
	ErrAdmissionConflict = errors.New("job already active for user")
	// ErrStaleTimeout: set by reclamation when a processing job stops reporting progress.
	ErrStaleTimeout = errors.New("stale job timeout")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ErrorKind values stored on processing_jobs.error_kind.
const (
	KindMalformedInput = "MALFORMED_INPUT"
	KindCollaborator   = "COLLABORATOR"
	KindStorage        = "STORAGE"
	KindStaleTimeout   = "STALE_TIMEOUT"
	KindUnknown        = "UNKNOWN"
)

// ClassifyError maps a pipeline error onto its stored kind.
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	case errors.Is(err, ErrCollaborator):
		return KindCollaborator
	case errors.Is(err, ErrStorage):
		return KindStorage
	case errors.Is(err, ErrStaleTimeout):
		return KindStaleTimeout
	default:
		return KindUnknown
	}
}

// IsRetryable reports whether a stored error kind qualifies for a retry.
// Malformed input is a "fix your file" failure; retrying cannot help it.
// Unknown errors are retried: a misclassified transient beats a stuck upload.
func IsRetryable(kind string) bool {
	switch kind {
	case KindCollaborator, KindStorage, KindStaleTimeout, KindUnknown:
		return true
	default:
		return false
	}
}

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func AlreadyExistsError(message string) error {
	return status.Error(codes.AlreadyExists, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
