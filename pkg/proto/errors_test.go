package proto

import (
	"context"
	"errors"
	"testing"
)

func TestErrorFamilies(t *testing.T) {
	cases := []struct {
		err    error
		family error
	}{
		{ErrTeamNotFound, ErrNotFound},
		{ErrMemberNotFound, ErrNotFound},
		{ErrEventNotFound, ErrNotFound},
		{ErrJoinRequestNotFound, ErrNotFound},
		{ErrMemoNotFound, ErrNotFound},
		{ErrInviteOnly, ErrPolicyViolation},
		{ErrNotAdmin, ErrPolicyViolation},
		{ErrNotGameEvent, ErrPolicyViolation},
		{ErrNotMemoAuthor, ErrPolicyViolation},
		{ErrAlreadyPending, ErrAlreadyExists},
		{ErrAlreadyMember, ErrAlreadyExists},
		{ErrMissingField, ErrInvalidArgument},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.family) {
			t.Errorf("errors.Is(%v, %v) => false, want true", c.err, c.family)
		}
	}
	if errors.Is(ErrTeamNotFound, ErrPolicyViolation) {
		t.Error("ErrTeamNotFound must not be a policy violation")
	}
}

func TestUserContext(t *testing.T) {
	if u := UserFromContext(context.TODO()); u != nil {
		t.Errorf("UserFromContext(ctx) => %v, want nil", u)
	}
	ctx := WithUserContext(context.TODO(), Identity{UID: "u1", Name: "Ichiro"})
	u := UserFromContext(ctx)
	if u == nil || u.ID() != "u1" || u.DisplayName() != "Ichiro" {
		t.Errorf("UserFromContext(ctx) => %v, want u1/Ichiro", u)
	}
}
