package models

import "time"

// User represents a registered account of the blog service.
//
// PasswordHash holds the argon2id hash of the user's password and is never
// serialized; every outbound representation of a user goes through
// [User.Sanitized].
type User struct {
	// UserID is the server-assigned primary key.
	UserID int64 `json:"id"`

	// Username is the public display name, unique per account.
	Username string `json:"username"`

	// Email is the login identifier, unique per account.
	Email string `json:"email"`

	// PasswordHash is the PHC-encoded argon2id hash of the password.
	// Excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// AvatarURL is an optional link to the user's avatar image.
	AvatarURL string `json:"avatar_url,omitempty"`

	// Bio is an optional free-form self-description.
	Bio string `json:"bio,omitempty"`

	// LastLogin is the time of the most recent successful login, zero if
	// the user has never logged in.
	LastLogin time.Time `json:"last_login,omitzero"`

	// CreatedAt and UpdatedAt are server-maintained timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sanitized returns a copy of the user safe for inclusion in a response
// envelope: the password hash is cleared.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
