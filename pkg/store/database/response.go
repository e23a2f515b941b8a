package database

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/store"
	"github.com/jmoiron/sqlx"
)

var _ store.ResponseStore = (*responseStore)(nil)

type responseStore struct{}

// UpsertResponse implements store.ResponseStore.
func (*responseStore) UpsertResponse(ctx context.Context, h db.Handler, r models.Response) error {
	query := h.Rebind(`
		INSERT INTO
		  responses (team_id, event_id, uid, status, comment, updated_at)
		VALUES
		  (?, ?, ?, ?, ?, ?)
		ON CONFLICT (event_id, uid) DO UPDATE SET
		  team_id = excluded.team_id,
		  status = excluded.status,
		  comment = excluded.comment,
		  updated_at = excluded.updated_at
	`)
	_, err := h.ExecContext(ctx, query, r.TeamID, r.EventID, r.UID, r.Status, r.Comment, r.UpdatedAt)
	return db.WrapError(err)
}

// ListResponsesByEvent implements store.ResponseStore.
func (*responseStore) ListResponsesByEvent(ctx context.Context, h db.Handler, team, event string) ([]models.Response, error) {
	query := h.Rebind("SELECT * FROM responses WHERE team_id = ? AND event_id = ? ORDER BY uid")
	var rs []models.Response
	err := h.SelectContext(ctx, &rs, query, team, event)
	return rs, db.WrapError(err)
}

// ListResponsesByEventStatus implements store.ResponseStore.
func (*responseStore) ListResponsesByEventStatus(ctx context.Context, h db.Handler, team, event string, statuses []models.ResponseStatus) ([]models.Response, error) {
	var rs []models.Response
	if len(statuses) == 0 {
		return rs, nil
	}

	query, args, err := sqlx.In(`
		SELECT * FROM responses
		WHERE team_id = ? AND event_id = ? AND status IN (?)
		ORDER BY uid
	`, team, event, statusStrings(statuses))
	if err != nil {
		return nil, db.WrapError(err)
	}

	err = h.SelectContext(ctx, &rs, h.Rebind(query), args...)
	return rs, db.WrapError(err)
}

// ListResponsesByTeamStatus implements store.ResponseStore.
func (*responseStore) ListResponsesByTeamStatus(ctx context.Context, h db.Handler, team string, statuses []models.ResponseStatus) ([]models.Response, error) {
	var rs []models.Response
	if len(statuses) == 0 {
		return rs, nil
	}

	query, args, err := sqlx.In(`
		SELECT * FROM responses
		WHERE team_id = ? AND status IN (?)
		ORDER BY event_id, uid
	`, team, statusStrings(statuses))
	if err != nil {
		return nil, db.WrapError(err)
	}

	err = h.SelectContext(ctx, &rs, h.Rebind(query), args...)
	return rs, db.WrapError(err)
}

// ListResponsesByUID implements store.ResponseStore.
func (*responseStore) ListResponsesByUID(ctx context.Context, h db.Handler, team, uid string) ([]models.Response, error) {
	query := h.Rebind("SELECT * FROM responses WHERE team_id = ? AND uid = ? ORDER BY event_id")
	var rs []models.Response
	err := h.SelectContext(ctx, &rs, query, team, uid)
	return rs, db.WrapError(err)
}

// DeleteResponse implements store.ResponseStore.
func (*responseStore) DeleteResponse(ctx context.Context, h db.Handler, event, uid string) error {
	query := h.Rebind("DELETE FROM responses WHERE event_id = ? AND uid = ?")
	_, err := h.ExecContext(ctx, query, event, uid)
	return db.WrapError(err)
}
