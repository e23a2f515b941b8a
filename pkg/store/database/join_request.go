package database

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/store"
)

var _ store.JoinRequestStore = (*joinRequestStore)(nil)

type joinRequestStore struct{}

// CreateJoinRequest implements store.JoinRequestStore.
func (*joinRequestStore) CreateJoinRequest(ctx context.Context, h db.Handler, jr models.JoinRequest) error {
	query := h.Rebind(`
		INSERT INTO
		  join_requests (team_id, uid, display_name, status, created_at)
		VALUES
		  (?, ?, ?, ?, ?)
	`)
	_, err := h.ExecContext(ctx, query, jr.TeamID, jr.UID, jr.DisplayName, jr.Status, jr.CreatedAt)
	return db.WrapError(err)
}

// GetJoinRequest implements store.JoinRequestStore.
func (*joinRequestStore) GetJoinRequest(ctx context.Context, h db.Handler, team, uid string) (models.JoinRequest, error) {
	query := h.Rebind("SELECT * FROM join_requests WHERE team_id = ? AND uid = ?")
	var jr models.JoinRequest
	err := h.GetContext(ctx, &jr, query, team, uid)
	return jr, db.WrapError(err)
}

// ListJoinRequests implements store.JoinRequestStore.
func (*joinRequestStore) ListJoinRequests(ctx context.Context, h db.Handler, team string) ([]models.JoinRequest, error) {
	query := h.Rebind("SELECT * FROM join_requests WHERE team_id = ? ORDER BY created_at DESC, uid")
	var jrs []models.JoinRequest
	err := h.SelectContext(ctx, &jrs, query, team)
	return jrs, db.WrapError(err)
}

// DeleteJoinRequest implements store.JoinRequestStore.
func (*joinRequestStore) DeleteJoinRequest(ctx context.Context, h db.Handler, team, uid string) error {
	query := h.Rebind("DELETE FROM join_requests WHERE team_id = ? AND uid = ?")
	res, err := h.ExecContext(ctx, query, team, uid)
	if err != nil {
		return db.WrapError(err)
	}
	return requireAffected(res)
}
