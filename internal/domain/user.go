package domain

import "time"

// Role names recognized by the directory.
const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleAdmin    = "Admin"
)

// User is the directory record for an account. The directory owns and
// mutates it; the auth core only reads it and freezes a snapshot of
// roles/active into token claims at issuance time.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Roles        []string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
