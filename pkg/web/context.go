package web

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/config"
	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
)

// NewContextHandler returns a new context middleware.
// This middleware adds the config, backend, database, and logger to the
// request context.
func NewContextHandler(ctx context.Context) func(http.Handler) http.Handler {
	cfg := config.FromContext(ctx)
	be := backend.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("http")
	dbx := db.FromContext(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = config.WithContext(ctx, cfg)
			ctx = backend.WithContext(ctx, be)
			ctx = log.WithContext(ctx, logger.With(
				"method", r.Method,
				"path", r.URL,
				"addr", r.RemoteAddr,
			))
			ctx = db.WithContext(ctx, dbx)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

type teamContextKey struct{}

type membershipContextKey struct{}

// teamFromContext returns the active team of the request.
func teamFromContext(ctx context.Context) models.Team {
	t, _ := ctx.Value(teamContextKey{}).(models.Team)
	return t
}

// membershipFromContext returns the caller's membership in the active team.
func membershipFromContext(ctx context.Context) backend.Membership {
	ms, _ := ctx.Value(membershipContextKey{}).(backend.Membership)
	return ms
}

func withTeamContext(ctx context.Context, t models.Team, ms backend.Membership) context.Context {
	ctx = context.WithValue(ctx, teamContextKey{}, t)
	return context.WithValue(ctx, membershipContextKey{}, ms)
}
