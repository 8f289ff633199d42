package models

import "time"

// Role classifies what a user account is allowed to do.
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleAnalyst Role = "analyst"
)

// ParseRole validates a role string. The zero value "" is not a valid role;
// callers that want a default should substitute RoleUser before parsing.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleAnalyst:
		return Role(s), true
	}
	return "", false
}

// User is a stored credential record. PasswordHash is an encoded digest that
// carries its own hashing parameters; Salt is unique per record and never
// reused.
type User struct {
	ID           string
	Username     string
	Role         Role
	PasswordHash string
	Salt         []byte
	CreatedAt    time.Time
}
