package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/google/uuid"
)

// sessionHeader names the client session a watch belongs to. A session
// holds at most one live watch per team.
const sessionHeader = "X-Dugout-Session"

// getMembershipWatch streams the caller's member record of the active team
// as server-sent events. The first event is sent right away when the
// caller already is a member; an event follows every later change, such as
// the approval of a join request. The stream ends when the client goes
// away or the same session starts another watch.
func getMembershipWatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	logger := log.FromContext(ctx)
	user := proto.UserFromContext(ctx)
	team := teamFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		renderError(w, r, http.StatusNotImplemented, fmt.Errorf("streaming unsupported"))
		return
	}

	session := strings.TrimSpace(r.Header.Get(sessionHeader))
	if session == "" {
		session = r.URL.Query().Get("session")
	}
	if session == "" {
		session = uuid.NewString()
	}

	sub, err := be.WatchMembership(ctx, team.ID, user.ID(), session)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	defer sub.Cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-sub.Updates():
			if !ok {
				logger.Debug("membership watch replaced", "team", team.ID, "uid", user.ID())
				return
			}
			data, err := json.Marshal(newMemberView(m))
			if err != nil {
				logger.Error("failed to encode member", "err", err)
				return
			}
			if _, err := fmt.Fprintf(w, "event: membership\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
