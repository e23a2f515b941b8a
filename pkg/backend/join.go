package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
)

// SubmitJoinRequest asks for user to join an open team.
func (d *Backend) SubmitJoinRequest(ctx context.Context, teamID string, user proto.User) (models.JoinRequest, error) {
	if user == nil || user.ID() == "" {
		return models.JoinRequest{}, fmt.Errorf("%w: uid", proto.ErrMissingField)
	}
	team, err := d.Team(ctx, teamID)
	if err != nil {
		return models.JoinRequest{}, err
	}
	if !team.AcceptsJoinRequests() {
		return models.JoinRequest{}, proto.ErrInviteOnly
	}

	name := strings.TrimSpace(user.DisplayName())
	if name == "" {
		name = DefaultDisplayName
	}
	jr := models.JoinRequest{
		TeamID:      team.ID,
		UID:         user.ID(),
		DisplayName: name,
		Status:      models.JoinRequestPending,
		CreatedAt:   d.now(),
	}

	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		ms, err := d.membership(ctx, tx, team.ID, user.ID())
		if err != nil {
			return err
		}
		if ms.IsMember {
			return proto.ErrAlreadyMember
		}
		if _, err := d.store.GetJoinRequest(ctx, tx, team.ID, user.ID()); err == nil {
			return proto.ErrAlreadyPending
		} else if !errors.Is(err, db.ErrRecordNotFound) {
			return err
		}
		return d.store.CreateJoinRequest(ctx, tx, jr)
	}); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return models.JoinRequest{}, proto.ErrAlreadyPending
		}
		return models.JoinRequest{}, storeError(err, nil)
	}

	joinRequestCounter.WithLabelValues("submit").Inc()
	d.logger.Info("join request submitted", "team", team.ID, "uid", user.ID())
	return jr, nil
}

// PendingJoinRequest returns uid's outstanding join request for team.
func (d *Backend) PendingJoinRequest(ctx context.Context, teamID, uid string) (models.JoinRequest, error) {
	jr, err := d.store.GetJoinRequest(ctx, d.db, teamID, uid)
	return jr, storeError(err, proto.ErrJoinRequestNotFound)
}

// ListJoinRequests returns the outstanding join requests of team, newest
// first. Only admins may list them.
func (d *Backend) ListJoinRequests(ctx context.Context, caller proto.User, teamID string) ([]models.JoinRequest, error) {
	if err := d.requireAdmin(ctx, d.db, teamID, caller); err != nil {
		return nil, err
	}
	jrs, err := d.store.ListJoinRequests(ctx, d.db, teamID)
	return jrs, storeError(err, nil)
}

// ApproveJoinRequest turns uid's join request into an active member record
// and deletes the request. An existing member record keeps its role.
// Approving a request that no longer exists returns
// proto.ErrJoinRequestNotFound and changes nothing.
func (d *Backend) ApproveJoinRequest(ctx context.Context, caller proto.User, teamID, uid string) (models.Member, error) {
	if err := d.requireAdmin(ctx, d.db, teamID, caller); err != nil {
		return models.Member{}, err
	}

	var m models.Member
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		jr, err := d.store.GetJoinRequest(ctx, tx, teamID, uid)
		if err != nil {
			return storeError(err, proto.ErrJoinRequestNotFound)
		}

		// A caller who is already on the team keeps their role.
		m, err = d.ensureMembership(ctx, tx, teamID, uid, jr.DisplayName, access.Member)
		if err != nil {
			return err
		}

		return d.store.DeleteJoinRequest(ctx, tx, teamID, uid)
	}); err != nil {
		return models.Member{}, storeError(err, proto.ErrJoinRequestNotFound)
	}

	joinRequestCounter.WithLabelValues("approve").Inc()
	d.logger.Info("join request approved", "team", teamID, "uid", uid, "by", caller.ID())
	d.watchers.notify(m)
	return m, nil
}

// RejectJoinRequest deletes uid's join request without creating a member.
func (d *Backend) RejectJoinRequest(ctx context.Context, caller proto.User, teamID, uid string) error {
	if err := d.requireAdmin(ctx, d.db, teamID, caller); err != nil {
		return err
	}
	if err := d.store.DeleteJoinRequest(ctx, d.db, teamID, uid); err != nil {
		return storeError(err, proto.ErrJoinRequestNotFound)
	}

	joinRequestCounter.WithLabelValues("reject").Inc()
	d.logger.Info("join request rejected", "team", teamID, "uid", uid, "by", caller.ID())
	return nil
}
