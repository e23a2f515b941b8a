package store

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
)

// EventStore is a store for team events.
type EventStore interface {
	CreateEvent(ctx context.Context, h db.Handler, e models.Event) error
	// UpdateEventDetails overwrites the descriptive fields of an event. It
	// leaves created_at, created_by and lineup untouched.
	UpdateEventDetails(ctx context.Context, h db.Handler, e models.Event) error
	GetEvent(ctx context.Context, h db.Handler, team, id string) (models.Event, error)
	ListEvents(ctx context.Context, h db.Handler, team string, limit int) ([]models.Event, error)
	CountEvents(ctx context.Context, h db.Handler, team string) (int, error)
	SetEventLineup(ctx context.Context, h db.Handler, team, id string, lineup models.Lineup) error
	DeleteEvent(ctx context.Context, h db.Handler, team, id string) error
}
