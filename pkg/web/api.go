package web

import (
	"context"
	"net/http"

	"github.com/dugout-app/dugout/pkg/access"
	"github.com/gorilla/mux"
)

// TeamRoute is an API route scoped to the active team. role is the least
// role a caller needs.
type TeamRoute struct {
	method  string
	path    string
	role    access.Role
	handler http.HandlerFunc
}

// APIController registers the JSON API routes.
func APIController(_ context.Context, r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(withIdentity)

	api.HandleFunc("/session/anonymous", postAnonymousSession).Methods(http.MethodPost)
	api.HandleFunc("/me/teams", requireUser(getMyTeams)).Methods(http.MethodGet)
	api.HandleFunc("/teams", requireUser(postTeam)).Methods(http.MethodPost)

	team := api.PathPrefix("/team").Subrouter()
	team.Use(withTeam)
	for _, route := range teamRoutes {
		team.HandleFunc(route.path, withRole(route.role, route.handler)).Methods(route.method)
	}
}

var teamRoutes = []TeamRoute{
	// Anyone, including guests, may look at the team and ask to join.
	{
		method:  http.MethodGet,
		path:    "",
		role:    access.Guest,
		handler: getTeam,
	},
	{
		method:  http.MethodPost,
		path:    "/join-requests",
		role:    access.Guest,
		handler: requireUser(postJoinRequest),
	},
	{
		method:  http.MethodGet,
		path:    "/join-requests/mine",
		role:    access.Guest,
		handler: requireUser(getMyJoinRequest),
	},
	{
		method:  http.MethodGet,
		path:    "/membership/watch",
		role:    access.Guest,
		handler: requireUser(getMembershipWatch),
	},

	// Members
	{
		method:  http.MethodGet,
		path:    "/members",
		role:    access.Member,
		handler: getMembers,
	},
	{
		method:  http.MethodGet,
		path:    "/events",
		role:    access.Member,
		handler: getEvents,
	},
	{
		method:  http.MethodGet,
		path:    "/events/{event}",
		role:    access.Member,
		handler: getEvent,
	},
	{
		method:  http.MethodGet,
		path:    "/events/{event}/attendance",
		role:    access.Member,
		handler: getAttendanceSheet,
	},
	{
		method:  http.MethodPut,
		path:    "/events/{event}/response",
		role:    access.Member,
		handler: putResponse,
	},
	{
		method:  http.MethodGet,
		path:    "/attendance/mine",
		role:    access.Member,
		handler: getMyAttendance,
	},
	{
		method:  http.MethodGet,
		path:    "/memos",
		role:    access.Member,
		handler: getMemos,
	},
	{
		method:  http.MethodPost,
		path:    "/memos",
		role:    access.Member,
		handler: postMemo,
	},
	{
		method:  http.MethodDelete,
		path:    "/memos/{memo}",
		role:    access.Member,
		handler: deleteMemo,
	},

	// Admins
	{
		method:  http.MethodPost,
		path:    "/events",
		role:    access.Admin,
		handler: postEvent,
	},
	{
		method:  http.MethodPut,
		path:    "/events/{event}",
		role:    access.Admin,
		handler: putEvent,
	},
	{
		method:  http.MethodDelete,
		path:    "/events/{event}",
		role:    access.Admin,
		handler: deleteEvent,
	},
	{
		method:  http.MethodGet,
		path:    "/events/{event}/candidates",
		role:    access.Admin,
		handler: getLineupCandidates,
	},
	{
		method:  http.MethodPut,
		path:    "/events/{event}/lineup",
		role:    access.Admin,
		handler: putLineup,
	},
	{
		method:  http.MethodGet,
		path:    "/join-requests",
		role:    access.Admin,
		handler: getJoinRequests,
	},
	{
		method:  http.MethodPost,
		path:    "/join-requests/{uid}/approve",
		role:    access.Admin,
		handler: postApproveJoinRequest,
	},
	{
		method:  http.MethodPost,
		path:    "/join-requests/{uid}/reject",
		role:    access.Admin,
		handler: postRejectJoinRequest,
	},
	{
		method:  http.MethodGet,
		path:    "/stats",
		role:    access.Admin,
		handler: getStats,
	},
}
