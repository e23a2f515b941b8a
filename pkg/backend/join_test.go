package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/matryer/is"
)

func TestJoinRequestApproval(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	jr, err := f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.NoErr(err)
	is.Equal(jr.Status, models.JoinRequestPending)
	is.Equal(jr.DisplayName, "Alice")

	pending, err := f.be.PendingJoinRequest(f.ctx, team.ID, alice.ID())
	is.NoErr(err)
	is.Equal(pending.UID, alice.ID())
	is.Equal(f.be.ResolveRole(f.ctx, team.ID, alice.ID()).Role, access.Guest)

	m, err := f.be.ApproveJoinRequest(f.ctx, owner, team.ID, alice.ID())
	is.NoErr(err)
	is.Equal(m.AccessRole(), access.Member)
	is.True(m.IsActive)
	is.Equal(m.DisplayName, "Alice")

	ms := f.be.ResolveRole(f.ctx, team.ID, alice.ID())
	is.True(ms.IsMember)
	is.Equal(ms.Role, access.Member)

	_, err = f.be.PendingJoinRequest(f.ctx, team.ID, alice.ID())
	is.True(errors.Is(err, proto.ErrJoinRequestNotFound))

	// A second approval finds nothing and leaves the member untouched.
	_, err = f.be.ApproveJoinRequest(f.ctx, owner, team.ID, alice.ID())
	is.True(errors.Is(err, proto.ErrJoinRequestNotFound))
	is.True(errors.Is(err, proto.ErrNotFound))

	after, err := f.store.GetMember(f.ctx, f.db, team.ID, alice.ID())
	is.NoErr(err)
	is.True(after.UpdatedAt.Equal(m.UpdatedAt))
}

func TestApproveJoinRequestKeepsRole(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)
	f.member(t, team.ID, bob, access.Admin)

	// Stale requests left behind by callers who are already on the team.
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, u := range []proto.Identity{owner, bob} {
		is.NoErr(f.store.CreateJoinRequest(f.ctx, f.db, models.JoinRequest{
			TeamID:      team.ID,
			UID:         u.ID(),
			DisplayName: "Renamed",
			Status:      models.JoinRequestPending,
			CreatedAt:   created,
		}))
	}

	for u, want := range map[string]access.Role{owner.ID(): access.Owner, bob.ID(): access.Admin} {
		m, err := f.be.ApproveJoinRequest(f.ctx, owner, team.ID, u)
		is.NoErr(err)
		is.Equal(m.AccessRole(), want) // approval never demotes
		is.True(m.DisplayName != "Renamed")
		is.Equal(f.be.ResolveRole(f.ctx, team.ID, u).Role, want)

		_, err = f.be.PendingJoinRequest(f.ctx, team.ID, u)
		is.True(errors.Is(err, proto.ErrJoinRequestNotFound))
	}

	active, err := f.be.ListMembers(f.ctx, team.ID, true)
	is.NoErr(err)
	is.Equal(len(active), 2)
}

func TestSubmitJoinRequestInviteOnly(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeInvite)

	_, err := f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.True(errors.Is(err, proto.ErrInviteOnly))
	is.True(errors.Is(err, proto.ErrPolicyViolation))

	_, err = f.be.PendingJoinRequest(f.ctx, team.ID, alice.ID())
	is.True(errors.Is(err, proto.ErrJoinRequestNotFound))
}

func TestSubmitJoinRequestConflicts(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	_, err := f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.NoErr(err)
	_, err = f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.True(errors.Is(err, proto.ErrAlreadyPending))

	_, err = f.be.SubmitJoinRequest(f.ctx, team.ID, owner)
	is.True(errors.Is(err, proto.ErrAlreadyMember))

	_, err = f.be.SubmitJoinRequest(f.ctx, "t_missing", alice)
	is.True(errors.Is(err, proto.ErrTeamNotFound))

	_, err = f.be.SubmitJoinRequest(f.ctx, team.ID, proto.Identity{})
	is.True(errors.Is(err, proto.ErrMissingField))
}

func TestSubmitJoinRequestBlankName(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	jr, err := f.be.SubmitJoinRequest(f.ctx, team.ID, proto.Identity{UID: "anon"})
	is.NoErr(err)
	is.Equal(jr.DisplayName, DefaultDisplayName)
}

func TestJoinRequestsRequireAdmin(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)
	f.member(t, team.ID, bob, access.Member)

	_, err := f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.NoErr(err)

	_, err = f.be.ListJoinRequests(f.ctx, bob, team.ID)
	is.True(errors.Is(err, proto.ErrNotAdmin))
	_, err = f.be.ApproveJoinRequest(f.ctx, bob, team.ID, alice.ID())
	is.True(errors.Is(err, proto.ErrNotAdmin))
	is.True(errors.Is(err, proto.ErrPolicyViolation))
	err = f.be.RejectJoinRequest(f.ctx, bob, team.ID, alice.ID())
	is.True(errors.Is(err, proto.ErrNotAdmin))
	_, err = f.be.ApproveJoinRequest(f.ctx, nil, team.ID, alice.ID())
	is.True(errors.Is(err, proto.ErrNotAdmin))

	// Admins other than the owner may decide.
	f.member(t, team.ID, proto.Identity{UID: "coach", Name: "Coach"}, access.Admin)
	_, err = f.be.ApproveJoinRequest(f.ctx, proto.Identity{UID: "coach"}, team.ID, alice.ID())
	is.NoErr(err)
}

func TestRejectJoinRequest(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	_, err := f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.NoErr(err)

	is.NoErr(f.be.RejectJoinRequest(f.ctx, owner, team.ID, alice.ID()))
	is.True(!f.be.ResolveRole(f.ctx, team.ID, alice.ID()).IsMember)

	err = f.be.RejectJoinRequest(f.ctx, owner, team.ID, alice.ID())
	is.True(errors.Is(err, proto.ErrJoinRequestNotFound))

	// Rejected users may ask again.
	_, err = f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.NoErr(err)
}

func TestListJoinRequestsNewestFirst(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	_, err := f.be.SubmitJoinRequest(f.ctx, team.ID, alice)
	is.NoErr(err)
	_, err = f.be.SubmitJoinRequest(f.ctx, team.ID, bob)
	is.NoErr(err)

	jrs, err := f.be.ListJoinRequests(f.ctx, owner, team.ID)
	is.NoErr(err)
	is.Equal(len(jrs), 2)
	is.Equal(jrs[0].UID, bob.ID())
	is.Equal(jrs[1].UID, alice.ID())
}
