package validators

import (
	"errors"
	"strings"

	"github.com/ruablog/rua-api/models"
)

// ErrUnsupportedType is returned when a validator receives a payload type it
// has no rule set for. This indicates a programming error in route wiring,
// not a bad request.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationErrors aggregates every failed rule of one payload. It implements
// the error interface; the message lists all failing fields.
type ValidationErrors struct {
	Fields []models.FieldError
}

// Error returns a single line enumerating every failing field, in rule order,
// e.g. "username: must be between 3 and 50 characters; email: must be a
// valid email address".
func (v *ValidationErrors) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}

	return strings.Join(parts, "; ")
}

// add records one failed rule.
func (v *ValidationErrors) add(field, message string) {
	v.Fields = append(v.Fields, models.FieldError{Field: field, Message: message})
}

// orNil returns the receiver as an error, or nil when no rule failed.
func (v *ValidationErrors) orNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}
