package kernel

import (
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates that an ID was not initialized through one of
// the constructor functions. This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object that identifies an entity record.
//
// Freshly created records receive a random collision-free identifier backed by
// github.com/google/uuid; identifiers captured from routes or request bodies are
// wrapped as-is, because clients address records by the exact string they were
// handed at creation time.
//
// The zero value of ID is invalid and must be constructed using NewID or
// IDFromString. ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Allocate an identifier for a new record
//	id := kernel.NewID()
//
//	// Wrap an identifier supplied by a route parameter
//	id, err := kernel.IDFromString(routeID)
//	if err != nil {
//	    // handle error
//	}
type ID struct {
	value string
}

// NewID allocates a new random identifier.
// This is the only way new records obtain their identity; the allocation is
// atomic and collision-free across concurrent requests.
func NewID() ID {
	return ID{
		value: uuid.NewString(),
	}
}

// IDFromString wraps an externally supplied identifier string.
// Any non-empty string is accepted: records created before this service adopted
// UUIDs carry arbitrary identifiers, and route parameters must be able to
// address them. Returns an error for an empty string.
func IDFromString(s string) (ID, error) {
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

// String returns the identifier's string representation.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two identifiers for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed for a zero-value ID.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
