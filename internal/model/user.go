package model

import "time"

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleMarketer Role = "MARKETER"
	RoleSales    Role = "SALES"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMarketer, RoleSales:
		return true
	}
	return false
}

// RoleSet is a set of roles, used for role-gated access checks.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from the given roles
func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Contains reports whether r is a member of the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// User represents a user in the system
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
