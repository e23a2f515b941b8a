package models

import (
	"time"
)

// JoinMode controls whether guests may ask to join a team.
type JoinMode string

const (
	// JoinModeOpen accepts join requests.
	JoinModeOpen JoinMode = "open"
	// JoinModeInvite rejects join requests.
	JoinModeInvite JoinMode = "invite"
)

// Team represents a team, the tenant boundary every other record is scoped
// under.
type Team struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	OwnerUID  string    `db:"owner_uid" json:"ownerUid"`
	JoinMode  JoinMode  `db:"join_mode" json:"joinMode"`
	SportType string    `db:"sport_type" json:"sportType"`
	Plan      string    `db:"plan" json:"plan"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// AcceptsJoinRequests reports whether guests may submit join requests.
func (t Team) AcceptsJoinRequests() bool {
	return t.JoinMode == JoinModeOpen
}
