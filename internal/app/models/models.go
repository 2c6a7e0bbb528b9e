package models

// RoleType defines the student role type
type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

// Valid reports whether the role is one of the two known values.
// Anything else is rejected at the data-entry boundary.
func (r RoleType) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
