package proto

import (
	"errors"
	"fmt"
)

// Error families. Every specific error below wraps exactly one of these so
// callers can test either level with errors.Is.
var (
	// ErrNotFound is returned when a team, member, event, join request or
	// memo does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPolicyViolation is returned when an operation is not allowed by the
	// team's policy or the caller's role.
	ErrPolicyViolation = errors.New("policy violation")
	// ErrAlreadyExists is returned when a record the operation would create
	// is already there.
	ErrAlreadyExists = errors.New("already exists")
	// ErrPermissionDenied is returned when the store refuses access.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidArgument is returned for malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	// ErrTeamNotFound is returned when a team is not found.
	ErrTeamNotFound = fmt.Errorf("team %w", ErrNotFound)
	// ErrMemberNotFound is returned when a member is not found.
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = fmt.Errorf("event %w", ErrNotFound)
	// ErrJoinRequestNotFound is returned when a join request is not found.
	ErrJoinRequestNotFound = fmt.Errorf("join request %w", ErrNotFound)
	// ErrMemoNotFound is returned when a memo is not found.
	ErrMemoNotFound = fmt.Errorf("memo %w", ErrNotFound)

	// ErrInviteOnly is returned when joining a team that does not accept
	// join requests.
	ErrInviteOnly = fmt.Errorf("%w: team is invite only", ErrPolicyViolation)
	// ErrNotAdmin is returned when a non-admin attempts an admin operation.
	ErrNotAdmin = fmt.Errorf("%w: admin role required", ErrPolicyViolation)
	// ErrNotGameEvent is returned when saving a lineup for an event that is
	// not a game.
	ErrNotGameEvent = fmt.Errorf("%w: lineups are only available for games", ErrPolicyViolation)
	// ErrNotMemoAuthor is returned when deleting someone else's memo without
	// admin rights.
	ErrNotMemoAuthor = fmt.Errorf("%w: only the author or an admin can delete a memo", ErrPolicyViolation)

	// ErrAlreadyPending is returned when a join request is already pending.
	ErrAlreadyPending = fmt.Errorf("join request %w", ErrAlreadyExists)
	// ErrAlreadyMember is returned when a member asks to join again.
	ErrAlreadyMember = fmt.Errorf("member %w", ErrAlreadyExists)

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = fmt.Errorf("%w: missing required field", ErrInvalidArgument)
)
