// Package access defines the roles a user can hold within a team.
package access

import (
	"encoding"
	"errors"
	"strings"
)

// Role is a user's role within a team.
type Role int

const (
	// Guest is the role of a user without a member record. It is never
	// persisted.
	Guest Role = iota

	// Member is a regular team member.
	Member

	// Admin can manage events, lineups and join requests.
	Admin

	// Owner created the team. Owners have every admin right.
	Owner
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case Guest:
		return "guest"
	case Member:
		return "member"
	case Admin:
		return "admin"
	case Owner:
		return "owner"
	default:
		return "unknown"
	}
}

// ParseRole parses a role string. It returns -1 for unknown roles.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "guest":
		return Guest
	case "member":
		return Member
	case "admin":
		return Admin
	case "owner":
		return Owner
	default:
		return Role(-1)
	}
}

// IsAdmin reports whether the role carries admin rights.
func (r Role) IsAdmin() bool {
	return r == Admin || r == Owner
}

// IsMember reports whether the role belongs to a team member.
func (r Role) IsMember() bool {
	return r >= Member && r <= Owner
}

var (
	_ encoding.TextMarshaler   = Role(0)
	_ encoding.TextUnmarshaler = (*Role)(nil)
)

// ErrInvalidRole is returned when an invalid role is provided.
var ErrInvalidRole = errors.New("invalid role")

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	l := ParseRole(string(text))
	if l < 0 {
		return ErrInvalidRole
	}

	*r = l

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}
