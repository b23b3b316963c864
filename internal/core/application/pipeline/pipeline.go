package pipeline

import "context"

// Context is the shared mutable value a guard chain operates on. It carries
// the route-supplied identifier, the raw request payload, the payload after
// the required-fields guard has validated it, and the record an existence
// guard has located.
type Context struct {
	// RouteID is the identifier captured from the route.
	// Empty for create and list operations.
	RouteID string

	// Body is the request payload's nested data object as received.
	// Nil when the request carried no data object.
	Body map[string]any

	// Data is the payload promoted by a required-fields guard after
	// validation. Guards that run later in the chain read from here.
	Data map[string]any

	// Record is the entity located by an existence guard, made available to
	// later pipeline stages and the terminal handler.
	Record any
}

// Guard is a single validation step. A guard inspects the request context
// and/or the located record, and either passes control to the next guard by
// returning nil or aborts the chain with a classified error.
type Guard func(ctx context.Context, rc *Context) error

// Chain is an explicit ordered list of guards. The order of the slice is the
// order of evaluation, which makes guard precedence a testable property
// rather than hidden control flow.
type Chain []Guard

// Run evaluates the guards in order. The first failing guard short-circuits
// the chain and its error propagates unchanged; when every guard passes, the
// chain's caller may apply its terminal mutation.
func (c Chain) Run(ctx context.Context, rc *Context) error {
	for _, g := range c {
		if err := g(ctx, rc); err != nil {
			return err
		}
	}
	return nil
}
