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

const (
	// DefaultDisplayName is used for members created without a name.
	DefaultDisplayName = "ゲスト"

	// UnnamedMember is shown for members whose name is blank or unknown.
	UnnamedMember = "名前未設定"
)

// Membership is a user's resolved relationship to a team.
type Membership struct {
	Role     access.Role
	IsMember bool
	// Member is nil for guests.
	Member *models.Member
}

// IsAdmin reports whether the membership carries admin rights.
func (m Membership) IsAdmin() bool {
	return m.Role.IsAdmin()
}

var guest = Membership{Role: access.Guest}

// membership looks up uid in team and reports store failures.
func (d *Backend) membership(ctx context.Context, h db.Handler, teamID, uid string) (Membership, error) {
	if teamID == "" || uid == "" {
		return guest, nil
	}
	m, err := d.store.GetMember(ctx, h, teamID, uid)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return guest, nil
		}
		return guest, storeError(err, nil)
	}
	return Membership{Role: m.AccessRole(), IsMember: true, Member: &m}, nil
}

// ResolveRole returns uid's role in team. A missing member record resolves
// to guest. Store failures are logged and also resolve to guest.
func (d *Backend) ResolveRole(ctx context.Context, teamID, uid string) Membership {
	ms, err := d.membership(ctx, d.db, teamID, uid)
	if err != nil {
		if errors.Is(err, proto.ErrPermissionDenied) {
			d.logger.Debug("role resolution denied, using guest", "team", teamID, "uid", uid, "err", err)
		} else {
			d.logger.Error("failed to resolve role, using guest", "team", teamID, "uid", uid, "err", err)
		}
		return guest
	}
	return ms
}

// SyncMembership resolves user's membership in team like ResolveRole and
// fills a blank display name on an active member record from the identity.
// Guests are never given a record. Sync failures are logged and the
// resolved membership is returned unchanged.
func (d *Backend) SyncMembership(ctx context.Context, teamID string, user proto.User) Membership {
	if user == nil {
		return guest
	}
	ms := d.ResolveRole(ctx, teamID, user.ID())
	name := strings.TrimSpace(user.DisplayName())
	if ms.Member == nil || !ms.Member.IsActive || name == "" || strings.TrimSpace(ms.Member.DisplayName) != "" {
		return ms
	}

	var m models.Member
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		// Re-read inside the transaction so a removed record is not recreated.
		if _, err := d.store.GetMember(ctx, tx, teamID, user.ID()); err != nil {
			return err
		}
		var err error
		m, err = d.ensureMembership(ctx, tx, teamID, user.ID(), name, ms.Role)
		return err
	}); err != nil {
		d.logger.Error("failed to sync member name", "team", teamID, "uid", user.ID(), "err", err)
		return ms
	}

	d.logger.Debug("member name synced", "team", teamID, "uid", user.ID())
	ms.Member = &m
	return ms
}

// requireAdmin returns proto.ErrNotAdmin unless caller is an admin of team.
func (d *Backend) requireAdmin(ctx context.Context, h db.Handler, teamID string, caller proto.User) error {
	if caller == nil {
		return proto.ErrNotAdmin
	}
	ms, err := d.membership(ctx, h, teamID, caller.ID())
	if err != nil {
		return err
	}
	if !ms.IsAdmin() {
		return proto.ErrNotAdmin
	}
	return nil
}

// EnsureMembership makes sure uid has an active member record in team.
// An existing record keeps its role; a blank display name is filled in and
// the record is marked active. A missing record is created with
// defaultRole.
func (d *Backend) EnsureMembership(ctx context.Context, teamID, uid, displayName string, defaultRole access.Role) (models.Member, error) {
	var m models.Member
	err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = d.ensureMembership(ctx, tx, teamID, uid, displayName, defaultRole)
		return err
	})
	if err != nil {
		return models.Member{}, storeError(err, nil)
	}
	return m, nil
}

func (d *Backend) ensureMembership(ctx context.Context, h db.Handler, teamID, uid, displayName string, defaultRole access.Role) (models.Member, error) {
	if teamID == "" {
		return models.Member{}, fmt.Errorf("%w: team", proto.ErrMissingField)
	}
	if uid == "" {
		return models.Member{}, fmt.Errorf("%w: uid", proto.ErrMissingField)
	}
	displayName = strings.TrimSpace(displayName)
	now := d.now()

	m, err := d.store.GetMember(ctx, h, teamID, uid)
	switch {
	case err == nil:
		if strings.TrimSpace(m.DisplayName) == "" && displayName != "" {
			m.DisplayName = displayName
		}
		m.IsActive = true
		m.UpdatedAt = now
		if err := d.store.PatchMember(ctx, h, m); err != nil {
			return models.Member{}, err
		}
		return m, nil
	case !errors.Is(err, db.ErrRecordNotFound):
		return models.Member{}, err
	}

	if _, err := d.store.GetTeamByID(ctx, h, teamID); err != nil {
		return models.Member{}, storeError(err, proto.ErrTeamNotFound)
	}

	if !defaultRole.IsMember() {
		defaultRole = access.Member
	}
	if displayName == "" {
		displayName = DefaultDisplayName
	}
	m = models.Member{
		TeamID:      teamID,
		UID:         uid,
		DisplayName: displayName,
		IsActive:    true,
		JoinedAt:    now,
		UpdatedAt:   now,
	}
	m.Role.String, m.Role.Valid = defaultRole.String(), true
	if err := d.store.CreateMember(ctx, h, m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// ListMembers returns the members of a team ordered by join time.
func (d *Backend) ListMembers(ctx context.Context, teamID string, activeOnly bool) ([]models.Member, error) {
	members, err := d.store.ListMembers(ctx, d.db, teamID, activeOnly)
	return members, storeError(err, nil)
}

// ListMyTeams returns the teams uid is an active member of. Memberships of
// teams that no longer exist are skipped.
func (d *Backend) ListMyTeams(ctx context.Context, uid string) ([]models.Team, error) {
	if uid == "" {
		return nil, nil
	}
	memberships, err := d.store.ListActiveMembershipsByUID(ctx, d.db, uid)
	if err != nil {
		return nil, storeError(err, nil)
	}

	seen := make(map[string]struct{}, len(memberships))
	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		if _, ok := seen[m.TeamID]; ok {
			continue
		}
		seen[m.TeamID] = struct{}{}
		ids = append(ids, m.TeamID)
	}

	found, err := d.store.GetTeamsByIDs(ctx, d.db, ids)
	if err != nil {
		return nil, storeError(err, nil)
	}
	byID := make(map[string]models.Team, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	teams := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

// memberNames maps uids of team to display names. Unknown and blank names
// map to UnnamedMember.
func (d *Backend) memberNames(ctx context.Context, h db.Handler, teamID string, uids []string) (map[string]string, error) {
	members, err := d.store.GetMembersByUIDs(ctx, h, teamID, uids)
	if err != nil {
		return nil, storeError(err, nil)
	}
	names := make(map[string]string, len(uids))
	for _, uid := range uids {
		names[uid] = UnnamedMember
	}
	for _, m := range members {
		names[m.UID] = displayName(m)
	}
	return names, nil
}

// displayName returns m's trimmed display name or UnnamedMember.
func displayName(m models.Member) string {
	if n := strings.TrimSpace(m.DisplayName); n != "" {
		return n
	}
	return UnnamedMember
}
