package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// LineItem is a value object referencing a dish within an order, together with
// the quantity requested.
//
// The dish reference is a plain identifier string and is deliberately not
// checked against the dish store: orders may carry references to dishes that
// were renamed or created out of band, and the core pipeline only validates
// the quantity invariant.
type LineItem struct {
	dishID   string
	quantity int
}

// NewLineItem creates a line item for the given dish reference and quantity.
// Quantity must be a strictly positive integer.
func NewLineItem(dishID string, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("quantity must be an integer greater than 0"))
	}
	return LineItem{
		dishID:   dishID,
		quantity: quantity,
	}, nil
}

// DishID returns the referenced dish identifier.
func (li LineItem) DishID() string {
	return li.dishID
}

// Quantity returns the number of units requested.
func (li LineItem) Quantity() int {
	return li.quantity
}

// validate re-checks the quantity invariant, reporting the line item's
// position within its order on failure.
func (li LineItem) validate(index int) error {
	if li.quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("dishes[%d].quantity", index),
			errors.New("quantity must be an integer greater than 0"))
	}
	return nil
}
