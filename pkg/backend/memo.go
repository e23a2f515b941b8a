package backend

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/dugout-app/dugout/pkg/store"
	"github.com/google/uuid"
)

const (
	// DefaultMemoPageSize is the number of memos per page.
	DefaultMemoPageSize = 10
	maxMemoPageSize     = 100

	unknownAuthor = "Unknown"
)

// MemoPage is a page of memos. NextPageToken is empty on the last page.
type MemoPage struct {
	Memos         []models.Memo `json:"memos"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}

func encodeMemoCursor(m models.Memo) string {
	raw := strconv.FormatInt(m.CreatedAt.UnixNano(), 10) + ":" + m.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeMemoCursor(token string) (*store.MemoCursor, error) {
	if token == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: bad page token", proto.ErrInvalidArgument)
	}
	ts, id, ok := strings.Cut(string(raw), ":")
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: bad page token", proto.ErrInvalidArgument)
	}
	nanos, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad page token", proto.ErrInvalidArgument)
	}
	return &store.MemoCursor{CreatedAt: time.Unix(0, nanos).UTC(), ID: id}, nil
}

// PostMemo posts a memo to team. The author name is taken from the
// author's member record, falling back to the identity's name.
func (d *Backend) PostMemo(ctx context.Context, teamID string, author proto.User, text string) (models.Memo, error) {
	if author == nil || author.ID() == "" {
		return models.Memo{}, fmt.Errorf("%w: author", proto.ErrMissingField)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Memo{}, fmt.Errorf("%w: text", proto.ErrMissingField)
	}
	if _, err := d.Team(ctx, teamID); err != nil {
		return models.Memo{}, err
	}

	name := strings.TrimSpace(author.DisplayName())
	if ms := d.ResolveRole(ctx, teamID, author.ID()); ms.Member != nil {
		if n := strings.TrimSpace(ms.Member.DisplayName); n != "" {
			name = n
		}
	}
	if name == "" {
		name = unknownAuthor
	}

	m := models.Memo{
		ID:         uuid.NewString(),
		TeamID:     teamID,
		Text:       text,
		AuthorUID:  author.ID(),
		AuthorName: name,
		CreatedAt:  d.now(),
	}
	if err := d.store.CreateMemo(ctx, d.db, m); err != nil {
		return models.Memo{}, storeError(err, nil)
	}
	return m, nil
}

// DeleteMemo deletes a memo. Only its author or an admin may delete it.
func (d *Backend) DeleteMemo(ctx context.Context, caller proto.User, teamID, memoID string) error {
	if caller == nil {
		return proto.ErrNotMemoAuthor
	}
	m, err := d.store.GetMemo(ctx, d.db, teamID, memoID)
	if err != nil {
		return storeError(err, proto.ErrMemoNotFound)
	}
	if m.AuthorUID != caller.ID() {
		ms, err := d.membership(ctx, d.db, teamID, caller.ID())
		if err != nil {
			return err
		}
		if !ms.IsAdmin() {
			return proto.ErrNotMemoAuthor
		}
	}

	return storeError(d.store.DeleteMemo(ctx, d.db, teamID, memoID), proto.ErrMemoNotFound)
}

// ListMemos returns a page of memos newest first. pageToken is the
// NextPageToken of the previous page, or empty for the first page.
func (d *Backend) ListMemos(ctx context.Context, teamID, pageToken string, limit int) (MemoPage, error) {
	after, err := decodeMemoCursor(pageToken)
	if err != nil {
		return MemoPage{}, err
	}
	if limit <= 0 {
		limit = DefaultMemoPageSize
	}
	if limit > maxMemoPageSize {
		limit = maxMemoPageSize
	}

	memos, err := d.store.ListMemos(ctx, d.db, teamID, after, limit)
	if err != nil {
		return MemoPage{}, storeError(err, nil)
	}

	uids := make([]string, 0, len(memos))
	for _, m := range memos {
		uids = append(uids, m.AuthorUID)
	}
	members, err := d.store.GetMembersByUIDs(ctx, d.db, teamID, uids)
	if err != nil {
		return MemoPage{}, storeError(err, nil)
	}
	current := make(map[string]string, len(members))
	for _, m := range members {
		if n := strings.TrimSpace(m.DisplayName); n != "" {
			current[m.UID] = n
		}
	}
	for i := range memos {
		if n, ok := current[memos[i].AuthorUID]; ok {
			memos[i].AuthorName = n
		}
	}

	page := MemoPage{Memos: memos}
	if page.Memos == nil {
		page.Memos = []models.Memo{}
	}
	if len(memos) == limit {
		page.NextPageToken = encodeMemoCursor(memos[len(memos)-1])
	}
	return page, nil
}
