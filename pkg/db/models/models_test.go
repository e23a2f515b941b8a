package models

import (
	"database/sql"
	"testing"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/matryer/is"
)

func TestSlotCount(t *testing.T) {
	cases := []struct {
		system LineupSystem
		want   int
	}{
		{SystemNormal9, 9},
		{"DH10", 10},
		{"DH12", 12},
		{"DH15", 15},
		{"DHxyz", 10},
		{"DH0", 10},
		{"DH5", 10},
		{"DH16", 10},
		{"DH1000000000", 10},
		{"bogus", 10},
		{"", 10},
	}
	for _, c := range cases {
		if got := c.system.SlotCount(); got != c.want {
			t.Errorf("%q.SlotCount() => %d, want %d", c.system, got, c.want)
		}
	}
}

func TestLineupSystemValid(t *testing.T) {
	is := is.New(t)
	for _, s := range Systems {
		is.True(s.Valid()) // offered system
	}
	for _, s := range []LineupSystem{"", "DH9", "DH16", "DH200000", "normal9", "bogus"} {
		is.True(!s.Valid()) // unknown system
	}
}

func TestDuplicateMembers(t *testing.T) {
	is := is.New(t)
	l := Lineup{
		System: SystemNormal9,
		Starting: []LineupSlot{
			{Order: 3, MemberID: "b", Position: "一"},
			{Order: 1, MemberID: "a", Position: "投"},
			{Order: 2, MemberID: GuestPlayerID, Position: "捕"},
			{Order: 5, MemberID: "a", Position: "DH"},
			{Order: 4, MemberID: GuestPlayerID, Position: "二"},
			{Order: 6, MemberID: "a", Position: "ベンチ"},
		},
	}
	is.Equal(l.DuplicateMembers(), []string{"a"})
	is.Equal(Lineup{}.DuplicateMembers(), []string(nil))

	sorted := l.Sorted()
	is.Equal(sorted[0].MemberID, "a")
	is.Equal(sorted[1].MemberID, GuestPlayerID)
	is.Equal(l.Starting[0].Order, 3) // Sorted must not reorder the receiver
}

func TestLineupValueScan(t *testing.T) {
	is := is.New(t)
	in := Lineup{
		System:      "DH10",
		Starting:    []LineupSlot{{Order: 1, MemberID: "a", Position: "DH"}},
		Memo:        "bring gloves",
		IsPublished: true,
	}
	v, err := in.Value()
	is.NoErr(err)

	var out Lineup
	is.NoErr(out.Scan(v))
	is.Equal(out, in)
	is.NoErr(out.Scan([]byte(`{"system":"NORMAL9"}`)))
	is.Equal(out.System, SystemNormal9)
	is.True(out.Scan(42) != nil)

	empty, err := Lineup{System: SystemNormal9}.Value()
	is.NoErr(err)
	is.Equal(empty, `{"system":"NORMAL9","starting":[],"memo":"","isPublished":false}`)
}

func TestMemberAccessRole(t *testing.T) {
	cases := []struct {
		role sql.NullString
		want access.Role
	}{
		{sql.NullString{}, access.Member},
		{sql.NullString{String: "", Valid: true}, access.Member},
		{sql.NullString{String: "guest", Valid: true}, access.Member},
		{sql.NullString{String: "bogus", Valid: true}, access.Member},
		{sql.NullString{String: "admin", Valid: true}, access.Admin},
		{sql.NullString{String: "owner", Valid: true}, access.Owner},
	}
	for _, c := range cases {
		if got := (Member{Role: c.role}).AccessRole(); got != c.want {
			t.Errorf("AccessRole(%v) => %s, want %s", c.role, got, c.want)
		}
	}
}

func TestParseResponseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want ResponseStatus
		ok   bool
	}{
		{"present", StatusPresent, true},
		{"late", StatusLate, true},
		{"absent", StatusAbsent, true},
		{"undecided", StatusUndecided, true},
		{"", StatusNoResponse, true},
		{"unknown", StatusNoResponse, true},
		{"maybe", StatusNoResponse, false},
	}
	for _, c := range cases {
		got, ok := ParseResponseStatus(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseResponseStatus(%q) => %q, %v, want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
	if !StatusLate.IsAttending() || StatusAbsent.IsAttending() {
		t.Error("IsAttending mismatch")
	}
	if !EventOfficial.IsGame() || !EventPracticeGame.IsGame() || EventPractice.IsGame() || EventOther.IsGame() {
		t.Error("IsGame mismatch")
	}
}
