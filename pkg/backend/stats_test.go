package backend

import (
	"math"
	"testing"
	"time"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/matryer/is"
)

func TestAttendanceRate(t *testing.T) {
	is := is.New(t)
	is.Equal(attendanceRate(0, 0), 0.0)
	is.Equal(attendanceRate(1, 3), 33.3)
	is.Equal(attendanceRate(2, 3), 66.7)
	is.Equal(attendanceRate(3, 3), 100.0)
}

func TestComputeRatesWithoutEvents(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)

	s, err := f.be.ComputeRates(f.ctx, team.ID)
	is.NoErr(err)
	is.True(s.Empty())
	is.Equal(s.TotalEvents, 0)
	is.Equal(len(s.Members), 0)
	is.True(s.Members != nil)
}

func TestComputeRates(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)
	other := f.team(t, models.JoinModeOpen)
	f.member(t, team.ID, alice, access.Member)
	f.member(t, team.ID, bob, access.Member)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	gone := models.Member{TeamID: team.ID, UID: "gone", DisplayName: "Gone", JoinedAt: now, UpdatedAt: now}
	is.NoErr(f.store.UpsertMember(f.ctx, f.db, gone))

	e1 := f.event(t, team.ID, models.EventOfficial, "2025-05-01")
	e2 := f.event(t, team.ID, models.EventPractice, "2025-05-02")
	f.event(t, team.ID, models.EventOther, "2025-05-03")
	foreign := f.event(t, other.ID, models.EventOfficial, "2025-05-01")

	f.respond(t, team.ID, e1.ID, alice.ID(), models.StatusPresent)
	f.respond(t, team.ID, e2.ID, alice.ID(), models.StatusLate)
	f.respond(t, team.ID, e1.ID, bob.ID(), models.StatusPresent)
	f.respond(t, team.ID, e2.ID, bob.ID(), models.StatusUndecided)
	f.respond(t, team.ID, e1.ID, owner.ID(), models.StatusAbsent)
	f.respond(t, team.ID, e1.ID, "gone", models.StatusPresent)
	f.respond(t, other.ID, foreign.ID, bob.ID(), models.StatusPresent)

	s, err := f.be.ComputeRates(f.ctx, team.ID)
	is.NoErr(err)
	is.True(!s.Empty())
	is.Equal(s.TotalEvents, 3)
	is.Equal(s.Members, []MemberRate{
		{UID: alice.ID(), Name: "Alice", Count: 2, Rate: 66.7},
		{UID: bob.ID(), Name: "Bob", Count: 1, Rate: 33.3},
		{UID: owner.ID(), Name: "Owner", Count: 0, Rate: 0},
	})
	for _, m := range s.Members {
		is.True(!math.IsNaN(m.Rate))
		is.True(m.Rate >= 0 && m.Rate <= 100)
	}
}

func TestComputeRatesKeepsJoinOrderOnTies(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	team := f.team(t, models.JoinModeOpen)
	for _, u := range []proto.User{bob, alice} {
		f.member(t, team.ID, u, access.Member)
	}
	e := f.event(t, team.ID, models.EventPractice, "2025-05-01")
	for _, uid := range []string{owner.ID(), alice.ID(), bob.ID()} {
		f.respond(t, team.ID, e.ID, uid, models.StatusPresent)
	}

	s, err := f.be.ComputeRates(f.ctx, team.ID)
	is.NoErr(err)
	is.Equal(len(s.Members), 3)
	is.Equal(s.Members[0].UID, owner.ID())
	is.Equal(s.Members[1].UID, bob.ID())
	is.Equal(s.Members[2].UID, alice.ID())
}
