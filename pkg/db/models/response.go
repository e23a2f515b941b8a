package models

import (
	"strings"
	"time"
)

// ResponseStatus is a member's attendance decision.
type ResponseStatus string

// Attendance statuses.
const (
	StatusPresent    ResponseStatus = "present"
	StatusLate       ResponseStatus = "late"
	StatusUndecided  ResponseStatus = "undecided"
	StatusAbsent     ResponseStatus = "absent"
	StatusNoResponse ResponseStatus = "no_response"
)

// AttendingStatuses are the statuses counted as attendance.
var AttendingStatuses = []ResponseStatus{StatusPresent, StatusLate}

// ParseResponseStatus parses s. Empty and "unknown" values parse to
// StatusNoResponse; anything else unrecognised reports false.
func ParseResponseStatus(s string) (ResponseStatus, bool) {
	switch ResponseStatus(strings.TrimSpace(s)) {
	case StatusPresent:
		return StatusPresent, true
	case StatusLate:
		return StatusLate, true
	case StatusUndecided:
		return StatusUndecided, true
	case StatusAbsent:
		return StatusAbsent, true
	case StatusNoResponse, "", "unknown":
		return StatusNoResponse, true
	default:
		return StatusNoResponse, false
	}
}

// IsAttending reports whether the status counts as attendance.
func (s ResponseStatus) IsAttending() bool {
	return s == StatusPresent || s == StatusLate
}

// Response is a member's answer for one event.
type Response struct {
	TeamID    string         `db:"team_id" json:"teamId"`
	EventID   string         `db:"event_id" json:"eventId"`
	UID       string         `db:"uid" json:"uid"`
	Status    ResponseStatus `db:"status" json:"status"`
	Comment   string         `db:"comment" json:"comment"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}
