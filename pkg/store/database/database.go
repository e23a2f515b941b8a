package database

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/config"
	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/store"
)

type datastore struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	logger *log.Logger

	*teamStore
	*memberStore
	*joinRequestStore
	*eventStore
	*responseStore
	*memoStore
}

// New returns a new store.Store database.
func New(ctx context.Context, db *db.DB) store.Store {
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("store")

	s := &datastore{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		logger: logger,

		teamStore:        &teamStore{},
		memberStore:      &memberStore{},
		joinRequestStore: &joinRequestStore{},
		eventStore:       &eventStore{},
		responseStore:    &responseStore{},
		memoStore:        &memoStore{},
	}

	return s
}
