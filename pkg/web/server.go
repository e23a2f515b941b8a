package web

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	dlog "github.com/dugout-app/dugout/pkg/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter returns a new HTTP router.
func NewRouter(ctx context.Context) http.Handler {
	logger := log.FromContext(ctx).WithPrefix("http")
	router := mux.NewRouter()
	router.Use(NewLoggingMiddleware(logger))

	// Health routes
	HealthController(ctx, router)

	// API routes
	APIController(ctx, router)

	router.NotFoundHandler = http.HandlerFunc(renderNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(renderMethodNotAllowed)

	// Context handler
	// Adds context to the request
	h := NewContextHandler(ctx)(router)
	h = handlers.CompressHandler(h)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(dlog.StandardLog(logger, "recovery")),
	)(h)

	return h
}
