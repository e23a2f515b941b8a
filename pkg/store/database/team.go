package database

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/store"
	"github.com/jmoiron/sqlx"
)

var _ store.TeamStore = (*teamStore)(nil)

type teamStore struct{}

// CreateTeam implements store.TeamStore.
func (*teamStore) CreateTeam(ctx context.Context, h db.Handler, team models.Team) error {
	query := h.Rebind(`
		INSERT INTO
		  teams (id, name, owner_uid, join_mode, sport_type, plan, created_at, updated_at)
		VALUES
		  (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := h.ExecContext(ctx, query,
		team.ID, team.Name, team.OwnerUID, team.JoinMode, team.SportType, team.Plan,
		team.CreatedAt, team.UpdatedAt)
	return db.WrapError(err)
}

// GetTeamByID implements store.TeamStore.
func (*teamStore) GetTeamByID(ctx context.Context, h db.Handler, id string) (models.Team, error) {
	query := h.Rebind("SELECT * FROM teams WHERE id = ?")
	var team models.Team
	err := h.GetContext(ctx, &team, query, id)
	return team, db.WrapError(err)
}

// GetTeamsByIDs implements store.TeamStore.
func (*teamStore) GetTeamsByIDs(ctx context.Context, h db.Handler, ids []string) ([]models.Team, error) {
	var teams []models.Team
	if len(ids) == 0 {
		return teams, nil
	}

	query, args, err := sqlx.In("SELECT * FROM teams WHERE id IN (?)", ids)
	if err != nil {
		return nil, db.WrapError(err)
	}

	query = h.Rebind(query)
	err = h.SelectContext(ctx, &teams, query, args...)
	return teams, db.WrapError(err)
}

// ListTeams implements store.TeamStore.
func (*teamStore) ListTeams(ctx context.Context, h db.Handler) ([]models.Team, error) {
	var teams []models.Team
	err := h.SelectContext(ctx, &teams, "SELECT * FROM teams ORDER BY created_at, id")
	return teams, db.WrapError(err)
}

// ListTeamsWithoutOwnerMember implements store.TeamStore.
func (*teamStore) ListTeamsWithoutOwnerMember(ctx context.Context, h db.Handler) ([]models.Team, error) {
	query := `
		SELECT
		  t.*
		FROM
		  teams t
		  LEFT JOIN members m ON m.team_id = t.id AND m.uid = t.owner_uid
		WHERE
		  m.uid IS NULL
		ORDER BY
		  t.created_at, t.id
	`
	var teams []models.Team
	err := h.SelectContext(ctx, &teams, query)
	return teams, db.WrapError(err)
}
