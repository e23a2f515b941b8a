package backend

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/config"
	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/store"
	"golang.org/x/text/language"
)

// Backend is the dugout backend that handles teams, memberships, join
// requests, events, lineups and attendance.
type Backend struct {
	ctx      context.Context
	cfg      *config.Config
	db       *db.DB
	store    store.Store
	logger   *log.Logger
	cache    *cache
	watchers *watchHub
	locale   language.Tag
	now      func() time.Time
}

// New returns a new dugout backend.
func New(ctx context.Context, cfg *config.Config, db *db.DB, st store.Store) *Backend {
	logger := log.FromContext(ctx).WithPrefix("backend")
	b := &Backend{
		ctx:      ctx,
		cfg:      cfg,
		db:       db,
		store:    st,
		logger:   logger,
		watchers: newWatchHub(),
		locale:   cfg.Collation(),
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}

	size := 1000
	if cfg != nil {
		size = cfg.Cache.Teams
	}
	b.cache = newCache(b, size)

	return b
}

// Close cancels every live membership watch.
func (d *Backend) Close() error {
	d.watchers.closeAll()
	return nil
}
