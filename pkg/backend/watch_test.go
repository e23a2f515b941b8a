package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/matryer/is"
)

func recvMember(t *testing.T, sub *Subscription) models.Member {
	t.Helper()
	select {
	case m, ok := <-sub.Updates():
		if !ok {
			t.Fatal("subscription closed")
		}
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for member update")
	}
	return models.Member{}
}

func expectQuiet(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case m, ok := <-sub.Updates():
		if ok {
			t.Fatalf("unexpected update: %+v", m)
		}
	default:
	}
}

func TestWatchDeliversCurrentState(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	sub, err := f.be.WatchMembership(f.ctx, team.ID, owner.ID(), "s1")
	is.NoErr(err)
	defer sub.Cancel()

	m := recvMember(t, sub)
	is.Equal(m.UID, owner.ID())
	is.Equal(m.AccessRole(), access.Owner)
}

func TestWatchDeliversApproval(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	_, err := f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.NoErr(err)

	sub, err := f.be.WatchMembership(f.ctx, team.ID, alice.ID(), "s1")
	is.NoErr(err)
	defer sub.Cancel()
	expectQuiet(t, sub) // no member record yet

	_, err = f.be.ApproveJoinRequest(f.ctx, owner, team.ID, alice.ID())
	is.NoErr(err)

	m := recvMember(t, sub)
	is.Equal(m.UID, alice.ID())
	is.Equal(m.AccessRole(), access.Member)
	is.True(m.IsActive)
}

func TestWatchReplacesSessionSubscription(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	_, err := f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.NoErr(err)

	first, err := f.be.WatchMembership(f.ctx, team.ID, alice.ID(), "s1")
	is.NoErr(err)
	second, err := f.be.WatchMembership(f.ctx, team.ID, alice.ID(), "s1")
	is.NoErr(err)
	other, err := f.be.WatchMembership(f.ctx, team.ID, alice.ID(), "s2")
	is.NoErr(err)

	select {
	case <-first.Done():
	default:
		t.Fatal("replaced subscription is still live")
	}
	_, ok := <-first.Updates()
	is.True(!ok)
	is.Equal(f.be.watchers.len(), 2)

	// Cancelling a replaced handle must not touch its replacement.
	first.Cancel()
	is.Equal(f.be.watchers.len(), 2)

	_, err = f.be.ApproveJoinRequest(f.ctx, owner, team.ID, alice.ID())
	is.NoErr(err)
	is.Equal(recvMember(t, second).UID, alice.ID())
	is.Equal(recvMember(t, other).UID, alice.ID())

	second.Cancel()
	second.Cancel()
	other.Cancel()
	is.Equal(f.be.watchers.len(), 0)
}

func TestWatchEndsWithContext(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	ctx, cancel := context.WithCancel(f.ctx)
	sub, err := f.be.WatchMembership(ctx, team.ID, owner.ID(), "s1")
	is.NoErr(err)
	cancel()

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription outlived its context")
	}
	is.Equal(f.be.watchers.len(), 0)
}

func TestWatchValidation(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	_, err := f.be.WatchMembership(f.ctx, "t_missing", owner.ID(), "s1")
	is.True(errors.Is(err, proto.ErrTeamNotFound))

	_, err = f.be.WatchMembership(f.ctx, team.ID, "", "s1")
	is.True(errors.Is(err, proto.ErrMissingField))
	is.Equal(f.be.watchers.len(), 0)
}
