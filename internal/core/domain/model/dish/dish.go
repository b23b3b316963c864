package dish

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrDishIsNotConstructed is returned when a Dish instance was not created through
	// the NewDish factory method. This ensures all dishes are properly validated.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")
)

// Dish represents a menu item record.
//
// Dish maintains these invariants:
//   - Must have a valid unique identifier, immutable once assigned
//   - Name, description, and image URL must be non-empty
//   - Price must be strictly greater than zero
//   - Can only be created through the NewDish constructor
//
// Dishes are never deleted; they are created once and mutated in place by
// Update, which replaces every client-settable field while preserving the
// identifier.
type Dish struct {
	// id is the unique identifier for the dish, never overwritten by client data
	id kernel.ID

	// name is the display name of the menu item
	name string

	// description describes the menu item
	description string

	// price is the menu price, strictly positive
	price float64

	// imageURL points at the item's picture
	imageURL string

	// isConstructed ensures the dish was created via NewDish
	isConstructed bool
}

// NewDish creates a new Dish instance with validation. This is the only way to
// create a valid Dish.
//
// Example:
//
//	d, err := dish.NewDish(kernel.NewID(), "Pasta", "Classic", 12, "pasta.png")
//	if err != nil {
//	    // Handle validation error
//	}
func NewDish(id kernel.ID, name, description string, price float64, imageURL string) (*Dish, error) {
	created := &Dish{
		isConstructed: true,
	}

	if err := errors.Join(
		created.setID(id),
		created.setName(name),
		created.setDescription(description),
		created.setPrice(price),
		created.setImageURL(imageURL),
	); err != nil {
		return nil, err
	}

	return created, nil
}

// Validate ensures the Dish instance was properly constructed through NewDish.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}

	return nil
}

// IsEqual compares two dishes by their unique identifiers.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.ID {
	return d.id
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish's description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish's menu price.
func (d *Dish) Price() float64 {
	return d.price
}

// ImageURL returns the dish's image location.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

// Update replaces every client-settable field of the dish in place.
// The identifier is always preserved from the existing record, never from
// client input. Validation happens against a staged copy first, so a failed
// update leaves the record untouched.
func (d *Dish) Update(name, description string, price float64, imageURL string) error {
	updated := Dish{
		id:            d.id,
		isConstructed: true,
	}

	if err := errors.Join(
		updated.setName(name),
		updated.setDescription(description),
		updated.setPrice(price),
		updated.setImageURL(imageURL),
	); err != nil {
		return err
	}

	*d = updated
	return nil
}

func (d *Dish) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}

func (d *Dish) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	d.price = price
	return nil
}

func (d *Dish) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image_url")
	}
	d.imageURL = imageURL
	return nil
}
