package apperrors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrFarmerNotFound   = errors.New("farmer not found")
	ErrFarmNotFound     = errors.New("farm not found")
	ErrSeasonNotFound   = errors.New("season not found")
	ErrInvalidReference = errors.New("invalid planned activity reference")
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateFarmer  = errors.New("farmer already exists")
)

// DomainError carries a stable error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInvalidReference = "INVALID_REFERENCE"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
)

// Wrap common errors with request context

func WrapUnauthorized(reason string) *DomainError {
	return NewDomainError(ErrCodeUnauthorized, reason, ErrUnauthorized)
}

func WrapForbidden(reason string) *DomainError {
	return NewDomainError(ErrCodeForbidden, reason, ErrForbidden)
}

func WrapFarmerNotFound(farmerID int64) *DomainError {
	return NewDomainError(
		ErrCodeNotFound,
		fmt.Sprintf("Farmer with ID %d not found", farmerID),
		ErrFarmerNotFound,
	)
}

func WrapFarmNotFound(farmID int64) *DomainError {
	return NewDomainError(
		ErrCodeNotFound,
		fmt.Sprintf("Farm with ID %d not found", farmID),
		ErrFarmNotFound,
	)
}

func WrapSeasonNotFound(seasonID int64) *DomainError {
	return NewDomainError(
		ErrCodeNotFound,
		fmt.Sprintf("Season with ID %d not found", seasonID),
		ErrSeasonNotFound,
	)
}

func WrapInvalidReference(plannedActivityID int64) *DomainError {
	return NewDomainError(
		ErrCodeInvalidReference,
		fmt.Sprintf("Invalid plannedActivityId: %d", plannedActivityID),
		ErrInvalidReference,
	)
}

func WrapValidation(reason string) *DomainError {
	return NewDomainError(ErrCodeValidation, reason, ErrValidation)
}

func WrapDuplicateFarmer(field string) *DomainError {
	return NewDomainError(
		ErrCodeConflict,
		fmt.Sprintf("Farmer with given %s already exists", field),
		ErrDuplicateFarmer,
	)
}

func WrapDatabaseError(err error) *DomainError {
	return NewDomainError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

// CodeOf extracts the error code from a DomainError chain, or DATABASE_ERROR
// for anything unrecognized.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeDatabaseError
}

// MessageOf returns the human-readable message without the wrapped cause, so
// internal details never reach the client.
func MessageOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}
