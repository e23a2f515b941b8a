package store

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
)

// MemberStore is a store for team members.
type MemberStore interface {
	GetMember(ctx context.Context, h db.Handler, team, uid string) (models.Member, error)
	CreateMember(ctx context.Context, h db.Handler, m models.Member) error
	// UpsertMember writes every column of m, creating the record if needed.
	UpsertMember(ctx context.Context, h db.Handler, m models.Member) error
	// PatchMember updates display_name, is_active and updated_at only.
	PatchMember(ctx context.Context, h db.Handler, m models.Member) error
	ListMembers(ctx context.Context, h db.Handler, team string, activeOnly bool) ([]models.Member, error)
	GetMembersByUIDs(ctx context.Context, h db.Handler, team string, uids []string) ([]models.Member, error)
	// ListActiveMembershipsByUID returns the active member records of uid
	// across all teams.
	ListActiveMembershipsByUID(ctx context.Context, h db.Handler, uid string) ([]models.Member, error)
}
