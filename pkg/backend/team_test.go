package backend

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/dugout-app/dugout/pkg/store"
	"github.com/matryer/is"
)

func TestCreateTeamBootstrapsOwner(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	team, err := f.be.CreateTeam(f.ctx, owner, "  Dugouts ", "", "")
	is.NoErr(err)
	is.True(strings.HasPrefix(team.ID, "t_"))
	is.Equal(team.Name, "Dugouts")
	is.Equal(team.JoinMode, models.JoinModeOpen)
	is.Equal(team.SportType, "other")
	is.Equal(team.Plan, "free")
	is.Equal(team.OwnerUID, owner.ID())

	ms := f.be.ResolveRole(f.ctx, team.ID, owner.ID())
	is.True(ms.IsMember)
	is.Equal(ms.Role, access.Owner)
	is.True(ms.IsAdmin())
	is.Equal(ms.Member.DisplayName, "Owner")

	got, err := f.be.ResolveActiveTeam(f.ctx, " "+team.ID+" ")
	is.NoErr(err)
	is.Equal(got.ID, team.ID)
}

func TestCreateTeamIDsAreUnique(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	// Freeze the clock so only the random suffix differs.
	f.be.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	a := f.team(t, models.JoinModeOpen)
	b := f.team(t, models.JoinModeOpen)
	is.True(a.ID != b.ID)
}

func TestCreateTeamValidation(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	_, err := f.be.CreateTeam(f.ctx, owner, " ", "", "")
	is.True(errors.Is(err, proto.ErrMissingField))

	_, err = f.be.CreateTeam(f.ctx, proto.Identity{}, "Dugouts", "", "")
	is.True(errors.Is(err, proto.ErrMissingField))

	_, err = f.be.CreateTeam(f.ctx, owner, "Dugouts", "", "secret")
	is.True(errors.Is(err, proto.ErrInvalidArgument))
}

func TestCreateTeamIsAtomic(t *testing.T) {
	is := is.New(t)
	fs := &faultyStore{failCreateMember: true}
	f := setup(t, func(s store.Store) store.Store {
		fs.Store = s
		return fs
	})

	_, err := f.be.CreateTeam(f.ctx, owner, "Dugouts", "", "")
	is.True(errors.Is(err, errInjected))

	teams, err := f.be.ListTeams(f.ctx)
	is.NoErr(err)
	is.Equal(len(teams), 0) // no orphaned team
}

func TestResolveActiveTeamNotFound(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	for _, id := range []string{"", "   ", "t_missing"} {
		_, err := f.be.ResolveActiveTeam(f.ctx, id)
		is.True(errors.Is(err, proto.ErrTeamNotFound))
		is.True(errors.Is(err, proto.ErrNotFound))
	}
}

func TestRepairBootstraps(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	healthy := f.team(t, models.JoinModeOpen)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orphan := models.Team{
		ID:        "t_orphan",
		Name:      "Orphans",
		OwnerUID:  "carol",
		JoinMode:  models.JoinModeOpen,
		SportType: "other",
		Plan:      "free",
		CreatedAt: now,
		UpdatedAt: now,
	}
	is.NoErr(f.store.CreateTeam(f.ctx, f.db, orphan))
	is.Equal(f.be.ResolveRole(f.ctx, orphan.ID, "carol").Role, access.Guest)

	n, err := f.be.RepairBootstraps(f.ctx)
	is.NoErr(err)
	is.Equal(n, 1)

	ms := f.be.ResolveRole(f.ctx, orphan.ID, "carol")
	is.Equal(ms.Role, access.Owner)
	is.Equal(ms.Member.DisplayName, DefaultDisplayName)
	is.Equal(f.be.ResolveRole(f.ctx, healthy.ID, owner.ID()).Role, access.Owner)

	n, err = f.be.RepairBootstraps(f.ctx)
	is.NoErr(err)
	is.Equal(n, 0)
}
