package store

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
)

// TeamStore is a store for teams.
type TeamStore interface {
	CreateTeam(ctx context.Context, h db.Handler, team models.Team) error
	GetTeamByID(ctx context.Context, h db.Handler, id string) (models.Team, error)
	GetTeamsByIDs(ctx context.Context, h db.Handler, ids []string) ([]models.Team, error)
	ListTeams(ctx context.Context, h db.Handler) ([]models.Team, error)
	// ListTeamsWithoutOwnerMember returns teams whose owner has no member
	// record, the leftovers of an interrupted bootstrap.
	ListTeamsWithoutOwnerMember(ctx context.Context, h db.Handler) ([]models.Team, error)
}
