package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/google/uuid"
)

const (
	// DefaultEventLimit is the number of events listed when no limit is
	// given.
	DefaultEventLimit = 50
)

// EventInput holds the editable fields of an event. An empty ID creates a
// new event.
type EventInput struct {
	ID    string
	Title string
	Date  string
	Time  string
	Place string
	Type  models.EventType
	Note  string
}

// UpsertEvent creates or updates an event. Updates keep the event's
// creation stamp and lineup. Role checks are the caller's responsibility.
func (d *Backend) UpsertEvent(ctx context.Context, caller proto.User, teamID string, in EventInput) (models.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Date = strings.TrimSpace(in.Date)
	switch {
	case in.Date == "":
		return models.Event{}, fmt.Errorf("%w: date", proto.ErrMissingField)
	case in.Title == "":
		return models.Event{}, fmt.Errorf("%w: title", proto.ErrMissingField)
	}
	if _, err := d.Team(ctx, teamID); err != nil {
		return models.Event{}, err
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	now := d.now()
	e := models.Event{
		ID:        id,
		TeamID:    teamID,
		Title:     in.Title,
		Date:      in.Date,
		Time:      in.Time,
		Place:     in.Place,
		Type:      in.Type,
		Note:      in.Note,
		UpdatedAt: now,
	}

	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		existing, err := d.store.GetEvent(ctx, tx, teamID, id)
		switch {
		case err == nil:
			if err := d.store.UpdateEventDetails(ctx, tx, e); err != nil {
				return err
			}
			e.CreatedAt, e.CreatedBy, e.Lineup = existing.CreatedAt, existing.CreatedBy, existing.Lineup
			return nil
		case !errors.Is(err, db.ErrRecordNotFound):
			return err
		}

		e.CreatedAt = now
		if caller != nil {
			e.CreatedBy = caller.ID()
		}
		return d.store.CreateEvent(ctx, tx, e)
	}); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			// The id belongs to another team.
			return models.Event{}, fmt.Errorf("event %s: %w", id, proto.ErrAlreadyExists)
		}
		return models.Event{}, storeError(err, proto.ErrEventNotFound)
	}

	return e, nil
}

// GetEvent returns an event of team.
func (d *Backend) GetEvent(ctx context.Context, teamID, eventID string) (models.Event, error) {
	e, err := d.store.GetEvent(ctx, d.db, teamID, eventID)
	return e, storeError(err, proto.ErrEventNotFound)
}

// ListEvents returns the latest events of team by date. A non-positive
// limit uses DefaultEventLimit.
func (d *Backend) ListEvents(ctx context.Context, teamID string, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	events, err := d.store.ListEvents(ctx, d.db, teamID, limit)
	return events, storeError(err, nil)
}

// DeleteEvent deletes an event and all of its responses. Either everything
// is deleted or nothing is.
func (d *Backend) DeleteEvent(ctx context.Context, teamID, eventID string) error {
	var deleted int
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if _, err := d.store.GetEvent(ctx, tx, teamID, eventID); err != nil {
			return err
		}

		responses, err := d.store.ListResponsesByEvent(ctx, tx, teamID, eventID)
		if err != nil {
			return err
		}
		for _, r := range responses {
			if err := d.store.DeleteResponse(ctx, tx, r.EventID, r.UID); err != nil {
				return fmt.Errorf("delete response of %s: %w", r.UID, err)
			}
		}
		deleted = len(responses)

		return d.store.DeleteEvent(ctx, tx, teamID, eventID)
	}); err != nil {
		return storeError(err, proto.ErrEventNotFound)
	}

	eventsDeletedCounter.Inc()
	d.logger.Info("deleted event", "team", teamID, "event", eventID, "responses", deleted)
	return nil
}
