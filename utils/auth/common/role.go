package common

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownRole is returned when a string does not name a known role
var ErrUnknownRole = errors.New("unknown role")

// Role is the role assigned to a session at login
type Role string

const (
	// Admin is the role of the brokerage administrators
	Admin Role = "admin"
	// Subadmin is the role of team leads managing a group of brokers
	Subadmin Role = "subadmin"
	// User is the role of end customers
	User Role = "user"
)

// Roles lists every known role
var Roles = []Role{Admin, Subadmin, User}

// ParseRole converts a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", errors.Wrap(ErrUnknownRole, fmt.Sprintf("role %s does not exist", s))
	}
	return role, nil
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case Admin, Subadmin, User:
		return true
	}
	return false
}

// BasePath returns the route prefix every page of the role lives under
func (r Role) BasePath() string {
	switch r {
	case Admin:
		return "/admin"
	case Subadmin:
		return "/subadmin"
	case User:
		return "/dashboard"
	}
	return ""
}

// LandingPath returns the page a session of the role is sent to after login
func (r Role) LandingPath() string {
	if !r.Valid() {
		return "/login"
	}
	return r.BasePath()
}

func (r Role) String() string {
	return string(r)
}
