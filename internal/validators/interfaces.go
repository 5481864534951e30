package validators

import "context"

// Validator checks a decoded request payload against the per-field rule set
// of its type.
//
// A failed validation returns a [*ValidationErrors] that enumerates every
// failing field, not just the first one, so that a caller can fix all
// problems in one round trip. Any other returned error means the payload
// type itself is not supported.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
