package store

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
)

// ResponseStore is a store for attendance responses.
type ResponseStore interface {
	// UpsertResponse creates or replaces the response keyed by
	// (r.EventID, r.UID).
	UpsertResponse(ctx context.Context, h db.Handler, r models.Response) error
	ListResponsesByEvent(ctx context.Context, h db.Handler, team, event string) ([]models.Response, error)
	ListResponsesByEventStatus(ctx context.Context, h db.Handler, team, event string, statuses []models.ResponseStatus) ([]models.Response, error)
	ListResponsesByTeamStatus(ctx context.Context, h db.Handler, team string, statuses []models.ResponseStatus) ([]models.Response, error)
	ListResponsesByUID(ctx context.Context, h db.Handler, team, uid string) ([]models.Response, error)
	DeleteResponse(ctx context.Context, h db.Handler, event, uid string) error
}
