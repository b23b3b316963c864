// Package dish provides the Dish entity for the ordering domain model.
//
// A Dish is a menu item record with a name, description, strictly positive
// price, and image URL. Dishes are created with an allocated identifier,
// mutated in place by full-field updates that preserve the identifier, and
// never deleted.
package dish
