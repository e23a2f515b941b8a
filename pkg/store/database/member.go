package database

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/store"
	"github.com/jmoiron/sqlx"
)

var _ store.MemberStore = (*memberStore)(nil)

type memberStore struct{}

// GetMember implements store.MemberStore.
func (*memberStore) GetMember(ctx context.Context, h db.Handler, team, uid string) (models.Member, error) {
	query := h.Rebind("SELECT * FROM members WHERE team_id = ? AND uid = ?")
	var m models.Member
	err := h.GetContext(ctx, &m, query, team, uid)
	return m, db.WrapError(err)
}

// CreateMember implements store.MemberStore.
func (*memberStore) CreateMember(ctx context.Context, h db.Handler, m models.Member) error {
	query := h.Rebind(`
		INSERT INTO
		  members (team_id, uid, display_name, role, is_active, joined_at, updated_at)
		VALUES
		  (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := h.ExecContext(ctx, query,
		m.TeamID, m.UID, m.DisplayName, m.Role, m.IsActive, m.JoinedAt, m.UpdatedAt)
	return db.WrapError(err)
}

// UpsertMember implements store.MemberStore.
func (*memberStore) UpsertMember(ctx context.Context, h db.Handler, m models.Member) error {
	query := h.Rebind(`
		INSERT INTO
		  members (team_id, uid, display_name, role, is_active, joined_at, updated_at)
		VALUES
		  (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (team_id, uid) DO UPDATE SET
		  display_name = excluded.display_name,
		  role = excluded.role,
		  is_active = excluded.is_active,
		  joined_at = excluded.joined_at,
		  updated_at = excluded.updated_at
	`)
	_, err := h.ExecContext(ctx, query,
		m.TeamID, m.UID, m.DisplayName, m.Role, m.IsActive, m.JoinedAt, m.UpdatedAt)
	return db.WrapError(err)
}

// PatchMember implements store.MemberStore.
func (*memberStore) PatchMember(ctx context.Context, h db.Handler, m models.Member) error {
	query := h.Rebind(`
		UPDATE members
		SET
		  display_name = ?,
		  is_active = ?,
		  updated_at = ?
		WHERE
		  team_id = ?
		  AND uid = ?
	`)
	_, err := h.ExecContext(ctx, query, m.DisplayName, m.IsActive, m.UpdatedAt, m.TeamID, m.UID)
	return db.WrapError(err)
}

// ListMembers implements store.MemberStore.
func (*memberStore) ListMembers(ctx context.Context, h db.Handler, team string, activeOnly bool) ([]models.Member, error) {
	query := "SELECT * FROM members WHERE team_id = ?"
	args := []interface{}{team}
	if activeOnly {
		query += " AND is_active = ?"
		args = append(args, true)
	}
	query = h.Rebind(query + " ORDER BY joined_at, uid")

	var members []models.Member
	err := h.SelectContext(ctx, &members, query, args...)
	return members, db.WrapError(err)
}

// GetMembersByUIDs implements store.MemberStore.
func (*memberStore) GetMembersByUIDs(ctx context.Context, h db.Handler, team string, uids []string) ([]models.Member, error) {
	var members []models.Member
	if len(uids) == 0 {
		return members, nil
	}

	query, args, err := sqlx.In("SELECT * FROM members WHERE team_id = ? AND uid IN (?)", team, uids)
	if err != nil {
		return nil, db.WrapError(err)
	}

	query = h.Rebind(query)
	err = h.SelectContext(ctx, &members, query, args...)
	return members, db.WrapError(err)
}

// ListActiveMembershipsByUID implements store.MemberStore.
func (*memberStore) ListActiveMembershipsByUID(ctx context.Context, h db.Handler, uid string) ([]models.Member, error) {
	query := h.Rebind(`
		SELECT
		  *
		FROM
		  members
		WHERE
		  uid = ?
		  AND is_active = ?
		ORDER BY
		  joined_at, team_id
	`)
	var members []models.Member
	err := h.SelectContext(ctx, &members, query, uid, true)
	return members, db.WrapError(err)
}
