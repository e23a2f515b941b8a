package models

import "time"

// JoinRequestPending is the only status a stored join request has.
const JoinRequestPending = "pending"

// JoinRequest is an outstanding request to join a team. It is deleted once
// approved or rejected.
type JoinRequest struct {
	TeamID      string    `db:"team_id" json:"teamId"`
	UID         string    `db:"uid" json:"uid"`
	DisplayName string    `db:"display_name" json:"displayName"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
