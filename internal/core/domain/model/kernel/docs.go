// Package kernel provides shared value objects for the ordering domain model.
//
// It contains the ID value object, which serves as the identifier allocator for
// all entity records: new records receive random collision-free identifiers,
// while route-supplied identifiers are wrapped for lookups without further
// interpretation.
//
// Value objects in this package are immutable, validated on construction, and
// safe for concurrent use.
package kernel
