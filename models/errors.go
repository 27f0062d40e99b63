package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidRange rejects a stay range whose end does not follow its start.
	ErrInvalidRange = errors.New("end_date must be strictly greater than start_date")

	// ErrInvalidPrice rejects rooms with non-positive pricing.
	ErrInvalidPrice = errors.New("room price must be a positive amount")

	// ErrInvalidSize rejects room sizes outside the known set.
	ErrInvalidSize = errors.New("unknown room size")

	// ErrInvalidStatus rejects booking statuses outside the known set.
	ErrInvalidStatus = errors.New("unknown booking status")

	// ErrInvalidState signals caller misuse of Hotel.Book: only pending
	// candidates may be submitted for admission.
	ErrInvalidState = errors.New("status must be 'pending' to proceed with booking")

	// ErrInvalidEmail rejects malformed email addresses.
	ErrInvalidEmail = errors.New("invalid email address format")

	// ErrNoBookings signals removal from a user whose booking collection was
	// never initialized. An initialized-but-empty collection is not an error.
	ErrNoBookings = errors.New("user has no booking collection")
)

// InvalidTimestampsError reports an entity whose last_modified_at precedes its
// created_at. It carries the entity id for traceability.
type InvalidTimestampsError struct {
	Entity string
	ID     uuid.UUID
}

func (e *InvalidTimestampsError) Error() string {
	return fmt.Sprintf("%s %s has invalid timestamps: last_modified_at precedes created_at", e.Entity, e.ID)
}

// IsInvalidTimestamps unwraps err into an InvalidTimestampsError, or nil.
func IsInvalidTimestamps(err error) *InvalidTimestampsError {
	var tsErr *InvalidTimestampsError
	if errors.As(err, &tsErr) {
		return tsErr
	}
	return nil
}
