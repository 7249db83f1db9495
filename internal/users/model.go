// Package users owns the credential directory: the stored accounts, the
// seeded default administrator and the authentication/user-management
// operations over them.
package users

import "time"

// Role classifies an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// DefaultAdminID is the id of the seeded administrator. The record with this
// id can never be removed, so the directory is never lockout-prone.
const DefaultAdminID = "admin-default"

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// MinPasswordLen is the minimum accepted password length for new accounts.
const MinPasswordLen = 4

// User is a stored account. Passwords are kept in plaintext to stay
// round-trip compatible with the legacy store this tool replaces; any
// multi-user or networked deployment needs hashed credentials and a real
// backend instead.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
