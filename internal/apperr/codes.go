package apperr

// BusinessCode is an application-level status code carried in every response
// envelope, independent of the HTTP status. Codes are grouped in reserved
// numeric ranges per category and are part of the published API contract:
// new codes may be added, existing ones are never renumbered.
type BusinessCode int

// Success codes (20000–29999).
const (
	CodeSuccess  BusinessCode = 20000
	CodeCreated  BusinessCode = 20100
	CodeAccepted BusinessCode = 20200
)

// Validation and request errors (40000–40099).
const (
	CodeBadRequest      BusinessCode = 40000
	CodeValidationError BusinessCode = 40001
	CodeParamError      BusinessCode = 40002
)

// Authentication errors (40100–40199).
const (
	CodeUnauthorized BusinessCode = 40100
	CodeTokenExpired BusinessCode = 40101
	CodeTokenInvalid BusinessCode = 40102
)

// Authorization errors (40300–40399).
const (
	CodeForbidden    BusinessCode = 40300
	CodeAccessDenied BusinessCode = 40301
)

// Resource errors (40400–40499).
const (
	CodeNotFound         BusinessCode = 40400
	CodeResourceNotFound BusinessCode = 40401
)

// Conflict errors (40900–40999).
const (
	CodeConflict          BusinessCode = 40900
	CodeDuplicateResource BusinessCode = 40901
)

// Server-side errors (50000–50201).
const (
	CodeInternalError      BusinessCode = 50000
	CodeServiceUnavailable BusinessCode = 50001
	CodeDatabaseError      BusinessCode = 50002
	CodeThirdPartyError    BusinessCode = 50200
	CodeExternalAPIError   BusinessCode = 50201
)

// successRange bounds the reserved success code range.
const (
	successRangeStart BusinessCode = 20000
	successRangeEnd   BusinessCode = 29999
)

// InSuccessRange reports whether c belongs to the reserved success range.
// Envelope.Success is true iff the envelope's code satisfies this predicate.
func (c BusinessCode) InSuccessRange() bool {
	return c >= successRangeStart && c <= successRangeEnd
}
