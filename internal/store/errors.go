package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., an applicant with the same NUID).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrApplicantNotFound indicates that no applicant matches the given
	// NUID or token.
	ErrApplicantNotFound = fmt.Errorf("%w: applicant", ErrNotFound)

	// ErrChallengeNotFound indicates that no challenge exists for the given token.
	ErrChallengeNotFound = fmt.Errorf("%w: challenge", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrNUIDExists indicates that an applicant with the given NUID is
	// already registered. This is detected via the storage uniqueness
	// constraint, so concurrent registrations of the same NUID yield
	// exactly one success.
	ErrNUIDExists = fmt.Errorf("%w: nuid", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for storage failures that are not
// otherwise classified: connection loss, unexpected constraint
// violations, serialization failures of the solution mapping. It keeps
// the original error reachable for errors.Is/errors.As without letting
// raw driver errors define the store's contract.
type StoreError struct {
	Entity    string // The entity type (e.g., "applicant", "submission")
	Operation string // The operation that failed (e.g., "create", "get")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
