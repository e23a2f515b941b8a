package backend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/google/uuid"
)

const (
	defaultSportType = "other"
	defaultPlan      = "free"
)

// newTeamID returns a collision resistant team id: a base36 creation time
// followed by a random suffix.
func (d *Backend) newTeamID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "t_" + strconv.FormatInt(d.now().UnixMilli(), 36) + "_" + suffix
}

// Team returns the team with the given id.
func (d *Backend) Team(ctx context.Context, id string) (models.Team, error) {
	if t, ok := d.cache.Get(id); ok {
		return t, nil
	}

	t, err := d.store.GetTeamByID(ctx, d.db, id)
	if err != nil {
		return models.Team{}, storeError(err, proto.ErrTeamNotFound)
	}

	d.cache.Set(id, t)
	return t, nil
}

// ResolveActiveTeam resolves a candidate team id, typically the explicit
// request parameter or the caller's cached selection.
func (d *Backend) ResolveActiveTeam(ctx context.Context, candidateID string) (models.Team, error) {
	id := strings.TrimSpace(candidateID)
	if id == "" {
		return models.Team{}, proto.ErrTeamNotFound
	}
	return d.Team(ctx, id)
}

// CreateTeam creates a team owned by owner. The team and the owner's member
// record are written in one transaction.
func (d *Backend) CreateTeam(ctx context.Context, owner proto.User, name, sportType string, joinMode models.JoinMode) (models.Team, error) {
	if owner == nil || owner.ID() == "" {
		return models.Team{}, fmt.Errorf("%w: owner", proto.ErrMissingField)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Team{}, fmt.Errorf("%w: name", proto.ErrMissingField)
	}
	if sportType = strings.TrimSpace(sportType); sportType == "" {
		sportType = defaultSportType
	}
	switch joinMode {
	case "":
		joinMode = models.JoinModeOpen
	case models.JoinModeOpen, models.JoinModeInvite:
	default:
		return models.Team{}, fmt.Errorf("%w: unknown join mode %q", proto.ErrInvalidArgument, joinMode)
	}

	now := d.now()
	team := models.Team{
		ID:        d.newTeamID(),
		Name:      name,
		OwnerUID:  owner.ID(),
		JoinMode:  joinMode,
		SportType: sportType,
		Plan:      defaultPlan,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.store.CreateTeam(ctx, tx, team); err != nil {
			return err
		}
		_, err := d.ensureMembership(ctx, tx, team.ID, owner.ID(), owner.DisplayName(), access.Owner)
		return err
	}); err != nil {
		d.logger.Error("failed to create team", "name", name, "owner", owner.ID(), "err", err)
		return models.Team{}, storeError(err, nil)
	}

	teamsCreatedCounter.Inc()
	d.cache.Set(team.ID, team)
	d.logger.Info("created team", "id", team.ID, "owner", team.OwnerUID)
	return team, nil
}

// ListTeams returns every team.
func (d *Backend) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := d.store.ListTeams(ctx, d.db)
	return teams, storeError(err, nil)
}

// RepairBootstraps recreates the owner member record of every team that
// lacks one. It returns the number of repaired teams and is safe to run
// repeatedly.
func (d *Backend) RepairBootstraps(ctx context.Context) (int, error) {
	teams, err := d.store.ListTeamsWithoutOwnerMember(ctx, d.db)
	if err != nil {
		return 0, storeError(err, nil)
	}

	var repaired int
	var errs []error
	for _, t := range teams {
		if _, err := d.EnsureMembership(ctx, t.ID, t.OwnerUID, "", access.Owner); err != nil {
			d.logger.Error("failed to repair team bootstrap", "team", t.ID, "err", err)
			errs = append(errs, fmt.Errorf("team %s: %w", t.ID, err))
			continue
		}
		d.logger.Info("repaired team bootstrap", "team", t.ID, "owner", t.OwnerUID)
		repaired++
	}

	return repaired, errors.Join(errs...)
}
