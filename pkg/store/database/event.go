package database

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/store"
)

var _ store.EventStore = (*eventStore)(nil)

type eventStore struct{}

// CreateEvent implements store.EventStore.
func (*eventStore) CreateEvent(ctx context.Context, h db.Handler, e models.Event) error {
	query := h.Rebind(`
		INSERT INTO
		  events (id, team_id, title, date, time, place, type, note, lineup, created_at, created_by, updated_at)
		VALUES
		  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := h.ExecContext(ctx, query,
		e.ID, e.TeamID, e.Title, e.Date, e.Time, e.Place, e.Type, e.Note, e.Lineup,
		e.CreatedAt, e.CreatedBy, e.UpdatedAt)
	return db.WrapError(err)
}

// UpdateEventDetails implements store.EventStore.
func (*eventStore) UpdateEventDetails(ctx context.Context, h db.Handler, e models.Event) error {
	query := h.Rebind(`
		UPDATE events
		SET
		  title = ?,
		  date = ?,
		  time = ?,
		  place = ?,
		  type = ?,
		  note = ?,
		  updated_at = ?
		WHERE
		  team_id = ?
		  AND id = ?
	`)
	res, err := h.ExecContext(ctx, query,
		e.Title, e.Date, e.Time, e.Place, e.Type, e.Note, e.UpdatedAt, e.TeamID, e.ID)
	if err != nil {
		return db.WrapError(err)
	}
	return requireAffected(res)
}

// GetEvent implements store.EventStore.
func (*eventStore) GetEvent(ctx context.Context, h db.Handler, team, id string) (models.Event, error) {
	query := h.Rebind("SELECT * FROM events WHERE team_id = ? AND id = ?")
	var e models.Event
	err := h.GetContext(ctx, &e, query, team, id)
	return e, db.WrapError(err)
}

// ListEvents implements store.EventStore. A non-positive limit lists every
// event.
func (*eventStore) ListEvents(ctx context.Context, h db.Handler, team string, limit int) ([]models.Event, error) {
	query := "SELECT * FROM events WHERE team_id = ? ORDER BY date DESC, time DESC, id"
	args := []interface{}{team}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	var events []models.Event
	err := h.SelectContext(ctx, &events, h.Rebind(query), args...)
	return events, db.WrapError(err)
}

// CountEvents implements store.EventStore.
func (*eventStore) CountEvents(ctx context.Context, h db.Handler, team string) (int, error) {
	query := h.Rebind("SELECT COUNT(*) FROM events WHERE team_id = ?")
	var n int
	err := h.GetContext(ctx, &n, query, team)
	return n, db.WrapError(err)
}

// SetEventLineup implements store.EventStore.
func (*eventStore) SetEventLineup(ctx context.Context, h db.Handler, team, id string, lineup models.Lineup) error {
	query := h.Rebind("UPDATE events SET lineup = ? WHERE team_id = ? AND id = ?")
	res, err := h.ExecContext(ctx, query, lineup, team, id)
	if err != nil {
		return db.WrapError(err)
	}
	return requireAffected(res)
}

// DeleteEvent implements store.EventStore.
func (*eventStore) DeleteEvent(ctx context.Context, h db.Handler, team, id string) error {
	query := h.Rebind("DELETE FROM events WHERE team_id = ? AND id = ?")
	res, err := h.ExecContext(ctx, query, team, id)
	if err != nil {
		return db.WrapError(err)
	}
	return requireAffected(res)
}
