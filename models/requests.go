package models

// CreateUserRequest is the body of POST /api/user/register.
type CreateUserRequest struct {
	// Username must be between 3 and 50 characters.
	Username string `json:"username"`

	// Email must be a syntactically valid address; it becomes the login
	// identifier.
	Email string `json:"email"`

	// Password must be at least 8 characters. Stored only as an argon2id
	// hash.
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListUsersRequest carries the pagination parameters of GET /api/users,
// parsed from the page and page_size query parameters.
type ListUsersRequest struct {
	// Page is the 1-based page number. Defaults to 1 when absent.
	Page int `json:"page"`

	// PageSize is the number of users per page, between 1 and 100.
	// Defaults to 20 when absent.
	PageSize int `json:"page_size"`
}

// AuthResponse is the success payload of register and login: the sanitized
// user together with a freshly issued bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
