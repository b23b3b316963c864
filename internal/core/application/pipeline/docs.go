// Package pipeline models request validation as an explicit ordered chain of
// guard steps over a shared mutable request context.
//
// Every operation on a resource runs a Chain before its terminal handler may
// mutate anything: each Guard inspects the request and/or the current entity
// state, and the first failing guard aborts the chain with a classified error
// from the errs package. Because a Chain is plain data, the order of guards —
// which determines which of several simultaneous violations gets reported —
// is visible at the construction site and directly testable.
//
// The package also provides the generic guards shared across resources:
// RequireFields with its literal truthiness semantics, and ConsistentID for
// route/body identifier agreement.
package pipeline
