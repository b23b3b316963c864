package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The state machine is deliberately permissive: an update may set any of the
// four recognized values directly, including jumping from pending straight to
// delivered. Only two hard rules exist:
//
//	pending ──> preparing ──> out-for-delivery ──> delivered
//	   │                                              │
//	   └── delete allowed only here          no further updates
//
// Delivered is a sink for mutation purposes, and deletion is legal only while
// an order is still pending. Implementations must not invent a stricter
// transition graph.
type Status string

const (
	// StatusPending is the initial status assigned when an order is created.
	// Only pending orders may be deleted.
	StatusPending Status = "pending"

	// StatusPreparing indicates the kitchen has started on the order.
	StatusPreparing Status = "preparing"

	// StatusOutForDelivery indicates the order has left the restaurant.
	StatusOutForDelivery Status = "out-for-delivery"

	// StatusDelivered indicates the order reached the customer.
	// This is a terminal state: delivered orders cannot be changed.
	StatusDelivered Status = "delivered"
)

// getValidStatuses returns the set of recognized status values.
func getValidStatuses() map[Status]bool {
	return map[Status]bool{
		StatusPending:        true,
		StatusPreparing:      true,
		StatusOutForDelivery: true,
		StatusDelivered:      true,
	}
}

// Validate checks if the Status value is one of the recognized values.
// An empty status is invalid: updates must always carry a status.
func (s Status) Validate() error {
	if !getValidStatuses()[s] {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("status must be one of %s, %s, %s, %s",
				StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered))
	}
	return nil
}

// String returns the wire representation of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// ValidateUpdate checks whether an order in this status may still be mutated.
// Delivered is terminal: any update against a delivered order is rejected
// regardless of what else the request contains.
func (s Status) ValidateUpdate() error {
	if s == StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("a delivered order cannot be changed"))
	}
	return nil
}

// ValidateDelete checks whether an order in this status may be deleted.
// Deletion is legal only from pending; every other value, recognized or not,
// is rejected. This is a stricter rule than ValidateUpdate.
func (s Status) ValidateDelete() error {
	if s != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("an order cannot be deleted unless it is pending"))
	}
	return nil
}
