package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through delivery.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier, immutable once assigned
//   - Delivery destination and contact number must be non-empty
//   - Must reference at least one dish, every line item with a strictly
//     positive integer quantity
//   - Status is always one of the recognized lifecycle values
//   - Delivered orders cannot be mutated; only pending orders can be deleted
//   - Can only be created through the NewOrder constructor
type Order struct {
	// id is the unique identifier for the order, never overwritten by client data
	id kernel.ID

	// deliverTo is the delivery destination
	deliverTo string

	// mobileNumber is the customer contact number
	mobileNumber string

	// status is the current lifecycle state
	status Status

	// dishes is the ordered sequence of line items, never empty
	dishes []LineItem

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order.
//
// New orders always start in the pending status; any status a client supplies
// at creation time is ignored.
//
// Example:
//
//	item, _ := order.NewLineItem(dishID, 2)
//	o, err := order.NewOrder(kernel.NewID(), "123 Main", "555-0100", []order.LineItem{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.ID, deliverTo, mobileNumber string, dishes []LineItem) (*Order, error) {
	created := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		created.setID(id),
		created.setDeliverTo(deliverTo),
		created.setMobileNumber(mobileNumber),
		created.setDishes(dishes),
	); err != nil {
		return nil, err
	}

	return created, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// DeliverTo returns the delivery destination.
func (o *Order) DeliverTo() string {
	return o.deliverTo
}

// MobileNumber returns the customer contact number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Dishes returns a copy of the order's line items in submission order.
func (o *Order) Dishes() []LineItem {
	dishes := make([]LineItem, len(o.dishes))
	copy(dishes, o.dishes)
	return dishes
}

// Update replaces every client-settable field of the order in place, including
// a direct status assignment.
//
// Business rules enforced:
//   - A delivered order cannot be changed, regardless of the new values
//   - The new status must be one of the recognized lifecycle values
//   - The identifier is always preserved from the existing record
//
// Validation happens against a staged copy first, so a failed update leaves
// the record untouched.
func (o *Order) Update(deliverTo, mobileNumber string, status Status, dishes []LineItem) error {
	if err := o.status.ValidateUpdate(); err != nil {
		return err
	}

	updated := Order{
		id:            o.id,
		isConstructed: true,
	}

	if err := errors.Join(
		updated.setDeliverTo(deliverTo),
		updated.setMobileNumber(mobileNumber),
		updated.setStatus(status),
		updated.setDishes(dishes),
	); err != nil {
		return err
	}

	*o = updated
	return nil
}

// CanBeDeleted reports whether the order may be removed from its store.
// Only pending orders are deletable.
func (o *Order) CanBeDeleted() error {
	return o.status.ValidateDelete()
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDeliverTo(deliverTo string) error {
	if deliverTo == "" {
		return errs.NewValueIsRequiredError("deliverTo")
	}
	o.deliverTo = deliverTo
	return nil
}

func (o *Order) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	o.mobileNumber = mobileNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDishes(dishes []LineItem) error {
	if len(dishes) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("dishes",
			errors.New("order must include at least one dish"))
	}
	for i, item := range dishes {
		if err := item.validate(i); err != nil {
			return err
		}
	}
	o.dishes = make([]LineItem, len(dishes))
	copy(o.dishes, dishes)
	return nil
}
