package models

import "time"

// Role is the authorization role of a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Roles lists every role.
var Roles = []Role{RoleUser, RoleAdmin}

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

const (
	AccountPending   AccountStatus = "pending"
	AccountVerified  AccountStatus = "verified"
	AccountSuspended AccountStatus = "suspended"
)

// AccountStatuses lists every account status.
var AccountStatuses = []AccountStatus{AccountPending, AccountVerified, AccountSuspended}

// DefaultTimezone is assigned to accounts that never chose one.
const DefaultTimezone = "UTC"

// User represents an account entity used for authentication and authorization.
// Credential and verification fields never leave the server.
type User struct {
	UserID        int64         `json:"id" db:"user_id"`
	Email         string        `json:"email" db:"email"`
	Username      string        `json:"username" db:"username"`
	PasswordHash  string        `json:"-" db:"password_hash"`
	AccountStatus AccountStatus `json:"account_status" db:"account_status"`
	EmailVerified bool          `json:"email_verified" db:"email_verified"`
	Role          Role          `json:"role" db:"role"`
	Timezone      string        `json:"timezone" db:"timezone"`

	// VerificationToken and VerificationTokenExpiresAt are both nil once the
	// token has been consumed.
	VerificationToken          *string    `json:"-" db:"verification_token"`
	VerificationTokenExpiresAt *time.Time `json:"-" db:"verification_token_expires_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Location resolves the account timezone, falling back to UTC for unknown names.
func (u User) Location() *time.Location {
	if u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResendVerificationRequest is the body of POST /api/auth/resend-verification.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// UserAdminUpdate is a partial update applied by an administrator.
// Nil fields are left untouched.
type UserAdminUpdate struct {
	Role          *Role          `json:"role,omitempty"`
	AccountStatus *AccountStatus `json:"account_status,omitempty"`
	Username      *string        `json:"username,omitempty"`
	Email         *string        `json:"email,omitempty"`
	EmailVerified *bool          `json:"email_verified,omitempty"`
	Timezone      *string        `json:"timezone,omitempty"`
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role   *Role
	Status *AccountStatus
	Limit  int
	Offset int
}

// UserPage is a paginated list of users.
type UserPage struct {
	Items  []User `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
