package models

import "time"

// Memo is a short note posted to a team's board.
type Memo struct {
	ID         string    `db:"id" json:"id"`
	TeamID     string    `db:"team_id" json:"teamId"`
	Text       string    `db:"text" json:"text"`
	AuthorUID  string    `db:"author_uid" json:"authorUid"`
	AuthorName string    `db:"author_name" json:"authorName"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
