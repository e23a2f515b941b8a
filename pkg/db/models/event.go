package models

import "time"

// EventType is the kind of an event.
type EventType string

// Event types.
const (
	EventOfficial     EventType = "official"
	EventPracticeGame EventType = "practiceGame"
	EventPractice     EventType = "practice"
	EventOther        EventType = "other"
)

// IsGame reports whether events of this type carry a lineup.
func (t EventType) IsGame() bool {
	return t == EventOfficial || t == EventPracticeGame
}

// Event is a scheduled team event.
type Event struct {
	ID        string    `db:"id" json:"id"`
	TeamID    string    `db:"team_id" json:"teamId"`
	Title     string    `db:"title" json:"title"`
	Date      string    `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Place     string    `db:"place" json:"place"`
	Type      EventType `db:"type" json:"type"`
	Note      string    `db:"note" json:"note"`
	Lineup    *Lineup   `db:"lineup" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	CreatedBy string    `db:"created_by" json:"createdBy"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
