package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/dugout-app/dugout/pkg/config"
	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/dugout-app/dugout/pkg/store"
	"github.com/dugout-app/dugout/pkg/store/database"
	"github.com/dugout-app/dugout/pkg/test"
)

var (
	owner = proto.Identity{UID: "owner", Name: "Owner"}
	alice = proto.Identity{UID: "alice", Name: "Alice"}
	bob   = proto.Identity{UID: "bob", Name: "Bob"}
)

type fixture struct {
	ctx   context.Context
	db    *db.DB
	store store.Store
	be    *Backend
}

// setup returns a backend on a fresh migrated database. wrap, when given,
// decorates the store the backend uses.
func setup(t *testing.T, wrap ...func(store.Store) store.Store) *fixture {
	t.Helper()
	cfg := config.DefaultConfig()
	ctx := config.WithContext(context.TODO(), cfg)
	dbx := test.OpenMigratedSqlite(ctx, t)

	var st store.Store = database.New(ctx, dbx)
	raw := st
	for _, w := range wrap {
		st = w(st)
	}

	be := New(ctx, cfg, dbx, st)
	clock := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
	be.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	t.Cleanup(func() { _ = be.Close() })

	return &fixture{ctx: ctx, db: dbx, store: raw, be: be}
}

func (f *fixture) team(t *testing.T, mode models.JoinMode) models.Team {
	t.Helper()
	team, err := f.be.CreateTeam(f.ctx, owner, "Dugouts", "baseball", mode)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	return team
}

func (f *fixture) member(t *testing.T, teamID string, u proto.User, role access.Role) {
	t.Helper()
	if _, err := f.be.EnsureMembership(f.ctx, teamID, u.ID(), u.DisplayName(), role); err != nil {
		t.Fatalf("ensure membership of %s: %v", u.ID(), err)
	}
}

func (f *fixture) event(t *testing.T, teamID string, typ models.EventType, date string) models.Event {
	t.Helper()
	e, err := f.be.UpsertEvent(f.ctx, owner, teamID, EventInput{
		Title: "Game on " + date,
		Date:  date,
		Type:  typ,
	})
	if err != nil {
		t.Fatalf("upsert event: %v", err)
	}
	return e
}

func (f *fixture) respond(t *testing.T, teamID, eventID, uid string, status models.ResponseStatus) {
	t.Helper()
	if _, err := f.be.SaveResponse(f.ctx, teamID, eventID, uid, status, ""); err != nil {
		t.Fatalf("save response: %v", err)
	}
}

// faultyStore fails selected operations of the wrapped store.
type faultyStore struct {
	store.Store

	// deleteResponseFailAt fails the n-th DeleteResponse call (1-based).
	deleteResponseFailAt int
	deleteResponseCalls  int

	failCreateMember bool
	getMemberErr     error
}

var errInjected = errors.New("injected failure")

func (s *faultyStore) DeleteResponse(ctx context.Context, h db.Handler, event, uid string) error {
	s.deleteResponseCalls++
	if s.deleteResponseCalls == s.deleteResponseFailAt {
		return errInjected
	}
	return s.Store.DeleteResponse(ctx, h, event, uid)
}

func (s *faultyStore) CreateMember(ctx context.Context, h db.Handler, m models.Member) error {
	if s.failCreateMember {
		return errInjected
	}
	return s.Store.CreateMember(ctx, h, m)
}

func (s *faultyStore) GetMember(ctx context.Context, h db.Handler, team, uid string) (models.Member, error) {
	if s.getMemberErr != nil {
		return models.Member{}, s.getMemberErr
	}
	return s.Store.GetMember(ctx, h, team, uid)
}
