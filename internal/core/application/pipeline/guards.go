package pipeline

import (
	"context"
	"fmt"

	"ordering/internal/pkg/errs"
)

// Truthy reports whether a decoded JSON value counts as present.
//
// The semantics are deliberately literal: empty strings, zero numbers, false,
// and nil all count as absent, exactly like the truthiness checks clients of
// this API have always been validated against. Collections are present even
// when empty; guards that need emptiness checks perform them explicitly.
func Truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}

// Number extracts a numeric value from a decoded JSON payload.
// JSON decoding produces float64; int is accepted for payloads constructed
// directly in code.
func Number(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// RequireFields builds a guard verifying that each named field is present and
// truthy in the request payload. The first missing field aborts the chain
// with a required-value error naming that field; remaining fields are not
// checked. On success the payload is promoted to Context.Data for the guards
// and terminal handler that follow.
//
// A zero price therefore fails this guard, not the price guard: truthiness
// runs first, and guard order is part of the contract.
func RequireFields(fields ...string) Guard {
	return func(_ context.Context, rc *Context) error {
		data := rc.Body
		if data == nil {
			data = map[string]any{}
		}

		for _, field := range fields {
			if !Truthy(data[field]) {
				return errs.NewValueIsRequiredError(field)
			}
		}

		rc.Data = data
		return nil
	}
}

// ConsistentID builds a guard verifying that a body-supplied id, when present,
// matches the route-supplied id. An absent or falsy body id is not an error:
// the located record keeps its identifier. A mismatch reports both values.
// This guard prevents a client from changing an entity's identifier via update.
func ConsistentID() Guard {
	return func(_ context.Context, rc *Context) error {
		data := rc.Data
		if data == nil {
			data = rc.Body
		}

		raw, ok := data["id"]
		if !ok || !Truthy(raw) {
			return nil
		}

		id, isString := raw.(string)
		if !isString || id != rc.RouteID {
			return errs.NewValueIsInvalidErrorWithCause("id",
				fmt.Errorf("body id %v does not match route id %s", raw, rc.RouteID))
		}
		return nil
	}
}
