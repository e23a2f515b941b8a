package store

import (
	"context"
	"time"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
)

// MemoCursor marks the last memo of a page. The next page starts strictly
// after it in (created_at desc, id desc) order.
type MemoCursor struct {
	CreatedAt time.Time
	ID        string
}

// MemoStore is a store for team memos.
type MemoStore interface {
	CreateMemo(ctx context.Context, h db.Handler, m models.Memo) error
	GetMemo(ctx context.Context, h db.Handler, team, id string) (models.Memo, error)
	// ListMemos returns up to limit memos newest first, starting after
	// cursor when it is non-nil.
	ListMemos(ctx context.Context, h db.Handler, team string, after *MemoCursor, limit int) ([]models.Memo, error)
	DeleteMemo(ctx context.Context, h db.Handler, team, id string) error
}
