package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies an AppError so callers can branch on the failure
// class instead of matching message strings.
type Kind string

const (
	KindValidation    Kind = "VALIDATION"     // malformed or oversized input
	KindConfiguration Kind = "CONFIGURATION"  // missing credential or bad deploy config
	KindOwnership     Kind = "OWNERSHIP"      // resource exists but belongs to another tenant
	KindNotFound      Kind = "NOT_FOUND"      // resource missing or deleted
	KindProvider      Kind = "PROVIDER"       // transient upstream failure, retryable by resubmission
	KindStorage       Kind = "STORAGE"        // blob store failure
	KindInternal      Kind = "INTERNAL"       // everything else
)

// AppError represents application-specific errors
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// Error constructors
func NewAppError(kind Kind, message string, cause error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func InvalidInputError(message string, cause error) *AppError {
	return NewAppError(KindValidation, message, cause)
}

func ConfigurationError(message string, cause error) *AppError {
	return NewAppError(KindConfiguration, message, cause)
}

func OwnershipError(message string) *AppError {
	return NewAppError(KindOwnership, message, ErrForbidden)
}

func NotFoundAppError(message string) *AppError {
	return NewAppError(KindNotFound, message, ErrNotFound)
}

func ProviderError(message string, cause error) *AppError {
	return NewAppError(KindProvider, message, cause)
}

func StorageError(message string, cause error) *AppError {
	return NewAppError(KindStorage, message, cause)
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// errors that did not originate in this codebase.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ToGRPC maps an application error onto the matching gRPC status code.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	switch KindOf(err) {
	case KindValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	case KindConfiguration:
		return status.Error(codes.FailedPrecondition, err.Error())
	case KindOwnership:
		return status.Error(codes.PermissionDenied, err.Error())
	case KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case KindProvider:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
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
