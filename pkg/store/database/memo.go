package database

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/store"
)

var _ store.MemoStore = (*memoStore)(nil)

type memoStore struct{}

// CreateMemo implements store.MemoStore.
func (*memoStore) CreateMemo(ctx context.Context, h db.Handler, m models.Memo) error {
	query := h.Rebind(`
		INSERT INTO
		  memos (id, team_id, text, author_uid, author_name, created_at)
		VALUES
		  (?, ?, ?, ?, ?, ?)
	`)
	_, err := h.ExecContext(ctx, query, m.ID, m.TeamID, m.Text, m.AuthorUID, m.AuthorName, m.CreatedAt)
	return db.WrapError(err)
}

// GetMemo implements store.MemoStore.
func (*memoStore) GetMemo(ctx context.Context, h db.Handler, team, id string) (models.Memo, error) {
	query := h.Rebind("SELECT * FROM memos WHERE team_id = ? AND id = ?")
	var m models.Memo
	err := h.GetContext(ctx, &m, query, team, id)
	return m, db.WrapError(err)
}

// ListMemos implements store.MemoStore.
func (*memoStore) ListMemos(ctx context.Context, h db.Handler, team string, after *store.MemoCursor, limit int) ([]models.Memo, error) {
	query := "SELECT * FROM memos WHERE team_id = ?"
	args := []interface{}{team}
	if after != nil {
		query += " AND (created_at < ? OR (created_at = ? AND id < ?))"
		args = append(args, after.CreatedAt, after.CreatedAt, after.ID)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var memos []models.Memo
	err := h.SelectContext(ctx, &memos, h.Rebind(query), args...)
	return memos, db.WrapError(err)
}

// DeleteMemo implements store.MemoStore.
func (*memoStore) DeleteMemo(ctx context.Context, h db.Handler, team, id string) error {
	query := h.Rebind("DELETE FROM memos WHERE team_id = ? AND id = ?")
	res, err := h.ExecContext(ctx, query, team, id)
	if err != nil {
		return db.WrapError(err)
	}
	return requireAffected(res)
}
