package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/access"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
)

const (
	// teamCookie caches the caller's last team selection.
	teamCookie       = "dugout_team"
	teamCookieMaxAge = 365 * 24 * 60 * 60

	// teamParam explicitly selects the active team.
	teamParam = "teamId"
)

var errNotMember = fmt.Errorf("%w: team membership required", proto.ErrPolicyViolation)

func setTeamCookie(w http.ResponseWriter, teamID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     teamCookie,
		Value:    teamID,
		Path:     "/",
		MaxAge:   teamCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTeamCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     teamCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// withTeam resolves the active team from the teamId parameter, falling back
// to the team cookie, and stores it with the caller's membership in the
// request context. A member's blank display name is filled from the token.
func withTeam(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		be := backend.FromContext(ctx)

		candidate := strings.TrimSpace(r.URL.Query().Get(teamParam))
		fromCookie := false
		if candidate == "" {
			if c, err := r.Cookie(teamCookie); err == nil {
				candidate, fromCookie = c.Value, true
			}
		}

		team, err := be.ResolveActiveTeam(ctx, candidate)
		if err != nil {
			if fromCookie && errors.Is(err, proto.ErrTeamNotFound) {
				clearTeamCookie(w)
			}
			renderAPIError(w, r, err)
			return
		}
		setTeamCookie(w, team.ID)

		ms := backend.Membership{Role: access.Guest}
		if user := proto.UserFromContext(ctx); user != nil {
			ms = be.SyncMembership(ctx, team.ID, user)
		}

		ctx = withTeamContext(ctx, team, ms)
		ctx = access.WithContext(ctx, ms.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withRole rejects callers below role in the active team.
func withRole(role access.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ms := membershipFromContext(ctx)

		var err error
		switch {
		case role.IsAdmin() && !ms.IsAdmin():
			err = proto.ErrNotAdmin
		case role.IsMember() && !ms.IsMember:
			err = errNotMember
		}
		if err == nil {
			next(w, r)
			return
		}

		if proto.UserFromContext(ctx) == nil {
			renderError(w, r, http.StatusUnauthorized, errors.New("authentication required"))
			return
		}
		renderAPIError(w, r, err)
	}
}

type memberView struct {
	UID         string      `json:"uid"`
	DisplayName string      `json:"displayName"`
	Role        access.Role `json:"role"`
	IsActive    bool        `json:"isActive"`
	JoinedAt    time.Time   `json:"joinedAt"`
}

func newMemberView(m models.Member) memberView {
	return memberView{
		UID:         m.UID,
		DisplayName: m.DisplayName,
		Role:        m.AccessRole(),
		IsActive:    m.IsActive,
		JoinedAt:    m.JoinedAt,
	}
}

type teamResponse struct {
	Team        models.Team         `json:"team"`
	Role        access.Role         `json:"role"`
	IsMember    bool                `json:"isMember"`
	IsAdmin     bool                `json:"isAdmin"`
	Member      *memberView         `json:"member,omitempty"`
	JoinRequest *models.JoinRequest `json:"joinRequest,omitempty"`
}

// getTeam returns the active team as seen by the caller, including the
// caller's pending join request.
func getTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	team := teamFromContext(ctx)
	ms := membershipFromContext(ctx)

	res := teamResponse{
		Team:     team,
		Role:     ms.Role,
		IsMember: ms.IsMember,
		IsAdmin:  ms.IsAdmin(),
	}
	if ms.Member != nil {
		mv := newMemberView(*ms.Member)
		res.Member = &mv
	}

	if user := proto.UserFromContext(ctx); user != nil && !ms.IsMember {
		jr, err := be.PendingJoinRequest(ctx, team.ID, user.ID())
		switch {
		case err == nil:
			res.JoinRequest = &jr
		case !errors.Is(err, proto.ErrNotFound):
			log.FromContext(ctx).Error("failed to look up join request", "err", err)
		}
	}

	renderJSON(w, http.StatusOK, res)
}

type createTeamRequest struct {
	Name      string          `json:"name"`
	SportType string          `json:"sportType"`
	JoinMode  models.JoinMode `json:"joinMode"`
}

// postTeam creates a team owned by the caller and selects it.
func postTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req createTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAPIError(w, r, err)
		return
	}

	team, err := be.CreateTeam(ctx, proto.UserFromContext(ctx), req.Name, req.SportType, req.JoinMode)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}

	setTeamCookie(w, team.ID)
	renderJSON(w, http.StatusCreated, team)
}

// getMyTeams lists the teams the caller is an active member of.
func getMyTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teams, err := be.ListMyTeams(ctx, proto.UserFromContext(ctx).ID())
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	if teams == nil {
		teams = []models.Team{}
	}
	renderJSON(w, http.StatusOK, teams)
}

// getMembers lists the active members of the team.
func getMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	members, err := be.ListMembers(ctx, teamFromContext(ctx).ID, true)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}

	views := make([]memberView, 0, len(members))
	for _, m := range members {
		views = append(views, newMemberView(m))
	}
	renderJSON(w, http.StatusOK, views)
}
