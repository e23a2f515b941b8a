package web

import (
	"net/http"

	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/gorilla/mux"
)

func getMemos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	limit, err := queryInt(r, "limit")
	if err != nil {
		renderAPIError(w, r, err)
		return
	}

	page, err := be.ListMemos(ctx, teamFromContext(ctx).ID, r.URL.Query().Get("pageToken"), limit)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, page)
}

type memoRequest struct {
	Text string `json:"text"`
}

func postMemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req memoRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAPIError(w, r, err)
		return
	}

	m, err := be.PostMemo(ctx, teamFromContext(ctx).ID, proto.UserFromContext(ctx), req.Text)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusCreated, m)
}

func deleteMemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	if err := be.DeleteMemo(ctx, proto.UserFromContext(ctx), teamFromContext(ctx).ID, mux.Vars(r)["memo"]); err != nil {
		renderAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
