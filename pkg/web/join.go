package web

import (
	"net/http"

	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/gorilla/mux"
)

// postJoinRequest asks for the caller to join the active team.
func postJoinRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	jr, err := be.SubmitJoinRequest(ctx, teamFromContext(ctx).ID, proto.UserFromContext(ctx))
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusCreated, jr)
}

// getMyJoinRequest returns the caller's pending join request.
func getMyJoinRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	jr, err := be.PendingJoinRequest(ctx, teamFromContext(ctx).ID, proto.UserFromContext(ctx).ID())
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, jr)
}

func getJoinRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	jrs, err := be.ListJoinRequests(ctx, proto.UserFromContext(ctx), teamFromContext(ctx).ID)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	if jrs == nil {
		jrs = []models.JoinRequest{}
	}
	renderJSON(w, http.StatusOK, jrs)
}

func postApproveJoinRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	m, err := be.ApproveJoinRequest(ctx, proto.UserFromContext(ctx), teamFromContext(ctx).ID, mux.Vars(r)["uid"])
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, newMemberView(m))
}

func postRejectJoinRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	if err := be.RejectJoinRequest(ctx, proto.UserFromContext(ctx), teamFromContext(ctx).ID, mux.Vars(r)["uid"]); err != nil {
		renderAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
