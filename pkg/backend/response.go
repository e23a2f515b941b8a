package backend

import (
	"context"
	"fmt"

	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
)

// DefaultAttendanceLimit is the number of events MyAttendance covers when
// no limit is given.
const DefaultAttendanceLimit = 20

// SaveResponse records uid's answer for an event. The response is always
// stamped with its team and event.
func (d *Backend) SaveResponse(ctx context.Context, teamID, eventID, uid string, status models.ResponseStatus, comment string) (models.Response, error) {
	if uid == "" {
		return models.Response{}, fmt.Errorf("%w: uid", proto.ErrMissingField)
	}
	st, ok := models.ParseResponseStatus(string(status))
	if !ok {
		return models.Response{}, fmt.Errorf("%w: unknown status %q", proto.ErrInvalidArgument, status)
	}
	if _, err := d.store.GetEvent(ctx, d.db, teamID, eventID); err != nil {
		return models.Response{}, storeError(err, proto.ErrEventNotFound)
	}

	r := models.Response{
		TeamID:    teamID,
		EventID:   eventID,
		UID:       uid,
		Status:    st,
		Comment:   comment,
		UpdatedAt: d.now(),
	}
	if err := d.store.UpsertResponse(ctx, d.db, r); err != nil {
		return models.Response{}, storeError(err, nil)
	}

	responsesSavedCounter.Inc()
	return r, nil
}

// AttendanceEntry is one member's answer for an event.
type AttendanceEntry struct {
	UID     string                `json:"uid"`
	Name    string                `json:"name"`
	Status  models.ResponseStatus `json:"status"`
	Comment string                `json:"comment"`
}

// AttendanceSheet lists every active member of team with their answer for
// an event. Members who have not answered have StatusNoResponse.
func (d *Backend) AttendanceSheet(ctx context.Context, teamID, eventID string) ([]AttendanceEntry, error) {
	if _, err := d.store.GetEvent(ctx, d.db, teamID, eventID); err != nil {
		return nil, storeError(err, proto.ErrEventNotFound)
	}
	members, err := d.store.ListMembers(ctx, d.db, teamID, true)
	if err != nil {
		return nil, storeError(err, nil)
	}
	responses, err := d.store.ListResponsesByEvent(ctx, d.db, teamID, eventID)
	if err != nil {
		return nil, storeError(err, nil)
	}

	byUID := make(map[string]models.Response, len(responses))
	for _, r := range responses {
		byUID[r.UID] = r
	}

	sheet := make([]AttendanceEntry, 0, len(members))
	for _, m := range members {
		e := AttendanceEntry{
			UID:    m.UID,
			Name:   displayName(m),
			Status: models.StatusNoResponse,
		}
		if r, ok := byUID[m.UID]; ok {
			e.Status, e.Comment = r.Status, r.Comment
		}
		sheet = append(sheet, e)
	}
	return sheet, nil
}

// MyEventAttendance pairs an event with the caller's answer.
type MyEventAttendance struct {
	Event   models.Event          `json:"event"`
	Status  models.ResponseStatus `json:"status"`
	Comment string                `json:"comment"`
}

// MyAttendance returns the latest events of team with uid's answers. A
// non-positive limit uses DefaultAttendanceLimit.
func (d *Backend) MyAttendance(ctx context.Context, teamID, uid string, limit int) ([]MyEventAttendance, error) {
	if limit <= 0 {
		limit = DefaultAttendanceLimit
	}
	events, err := d.store.ListEvents(ctx, d.db, teamID, limit)
	if err != nil {
		return nil, storeError(err, nil)
	}
	responses, err := d.store.ListResponsesByUID(ctx, d.db, teamID, uid)
	if err != nil {
		return nil, storeError(err, nil)
	}

	byEvent := make(map[string]models.Response, len(responses))
	for _, r := range responses {
		byEvent[r.EventID] = r
	}

	out := make([]MyEventAttendance, 0, len(events))
	for _, e := range events {
		a := MyEventAttendance{Event: e, Status: models.StatusNoResponse}
		if r, ok := byEvent[e.ID]; ok {
			a.Status, a.Comment = r.Status, r.Comment
		}
		out = append(out, a)
	}
	return out, nil
}
