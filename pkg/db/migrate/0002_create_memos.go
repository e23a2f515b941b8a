package migrate

import (
	"context"

	"github.com/dugout-app/dugout/pkg/db"
)

const (
	createMemosName    = "create memos"
	createMemosVersion = 2
)

var createMemos = Migration{
	Version: createMemosVersion,
	Name:    createMemosName,
	Migrate: func(ctx context.Context, tx *db.Tx) error {
		return migrateUp(ctx, tx, createMemosVersion, createMemosName)
	},
	Rollback: func(ctx context.Context, tx *db.Tx) error {
		return migrateDown(ctx, tx, createMemosVersion, createMemosName)
	},
}
