package models

// Envelope is the fixed wrapper around every API response body, success or
// failure. Clients branch on Code (a business status code, independent of the
// HTTP status) and use RequestID to correlate a response with server logs.
type Envelope struct {
	// Success reports whether the request was handled successfully.
	// It agrees with Code by construction: true iff Code is in the
	// success range.
	Success bool `json:"success"`

	// Code is the application-level status code (e.g. 20000 for success,
	// 40001 for a validation failure).
	Code int `json:"code"`

	// Message is a short human-readable summary. For internal failures it
	// is always a fixed generic string; the underlying cause is logged
	// server-side only.
	Message string `json:"message"`

	// Timestamp is the envelope construction time in milliseconds since
	// the Unix epoch.
	Timestamp int64 `json:"timestamp"`

	// RequestID is the correlation id assigned to the request, identical
	// to the X-Request-Id response header.
	RequestID string `json:"request_id"`

	// Data is the payload on success; omitted on failure.
	Data any `json:"data,omitempty"`

	// Errors enumerates per-field problems for validation failures so a
	// caller can fix all of them in one round trip. Omitted otherwise.
	Errors []FieldError `json:"errors,omitempty"`

	// Version is the server build version, "unknown" when the binary was
	// built without version stamping.
	Version string `json:"version,omitempty"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	// Field is the JSON field name the rule applies to, empty for
	// payload-level problems (e.g. malformed JSON).
	Field string `json:"field,omitempty"`

	// Message explains what the field must satisfy.
	Message string `json:"message"`
}

// PaginatedData is the Data payload of a paginated envelope: the page slice
// plus the pagination descriptor.
type PaginatedData[T any] struct {
	// List holds the items of the requested page, at most PageSize entries.
	List []T `json:"list"`

	// Pagination describes the position of List within the full result set.
	Pagination Pagination `json:"pagination"`
}

// Pagination describes one page of a larger result set.
type Pagination struct {
	// Page is the 1-based page number that was returned.
	Page int `json:"page"`

	// PageSize is the maximum number of items per page.
	PageSize int `json:"page_size"`

	// Total is the number of items in the whole result set.
	Total int64 `json:"total"`

	// TotalPages is Total divided by PageSize, rounded up.
	TotalPages int `json:"total_pages"`
}
