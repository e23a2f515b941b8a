package models

import (
	"database/sql"
	"time"

	"github.com/dugout-app/dugout/pkg/access"
)

// Member represents a user's membership of a team. The record's existence
// is the membership fact.
type Member struct {
	TeamID      string         `db:"team_id"`
	UID         string         `db:"uid"`
	DisplayName string         `db:"display_name"`
	Role        sql.NullString `db:"role"`
	IsActive    bool           `db:"is_active"`
	JoinedAt    time.Time      `db:"joined_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// AccessRole returns the member's role. Records without a usable role read
// as access.Member.
func (m Member) AccessRole() access.Role {
	if !m.Role.Valid {
		return access.Member
	}
	r := access.ParseRole(m.Role.String)
	if !r.IsMember() {
		return access.Member
	}
	return r
}
