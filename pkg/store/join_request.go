package store

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
)

// JoinRequestStore is a store for pending join requests.
type JoinRequestStore interface {
	CreateJoinRequest(ctx context.Context, h db.Handler, jr models.JoinRequest) error
	GetJoinRequest(ctx context.Context, h db.Handler, team, uid string) (models.JoinRequest, error)
	ListJoinRequests(ctx context.Context, h db.Handler, team string) ([]models.JoinRequest, error)
	// DeleteJoinRequest returns db.ErrRecordNotFound when there was nothing
	// to delete.
	DeleteJoinRequest(ctx context.Context, h db.Handler, team, uid string) error
}
