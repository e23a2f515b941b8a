package web

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/gorilla/mux"
)

type eventRequest struct {
	Title string           `json:"title"`
	Date  string           `json:"date"`
	Time  string           `json:"time"`
	Place string           `json:"place"`
	Type  models.EventType `json:"type"`
	Note  string           `json:"note"`
}

func (e eventRequest) input(id string) backend.EventInput {
	return backend.EventInput{
		ID:    id,
		Title: e.Title,
		Date:  e.Date,
		Time:  e.Time,
		Place: e.Place,
		Type:  e.Type,
		Note:  e.Note,
	}
}

func getEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	limit, err := queryInt(r, "limit")
	if err != nil {
		renderAPIError(w, r, err)
		return
	}

	events, err := be.ListEvents(ctx, teamFromContext(ctx).ID, limit)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	renderJSON(w, http.StatusOK, events)
}

// getEvent returns the event page, with the lineup block when the caller
// may see it.
func getEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	view, err := be.ViewEvent(ctx, proto.UserFromContext(ctx), teamFromContext(ctx).ID, mux.Vars(r)["event"])
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, view)
}

func postEvent(w http.ResponseWriter, r *http.Request) {
	saveEvent(w, r, "", http.StatusCreated)
}

func putEvent(w http.ResponseWriter, r *http.Request) {
	saveEvent(w, r, mux.Vars(r)["event"], http.StatusOK)
}

func saveEvent(w http.ResponseWriter, r *http.Request, id string, code int) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAPIError(w, r, err)
		return
	}

	e, err := be.UpsertEvent(ctx, proto.UserFromContext(ctx), teamFromContext(ctx).ID, req.input(id))
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, code, e)
}

func deleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	if err := be.DeleteEvent(ctx, teamFromContext(ctx).ID, mux.Vars(r)["event"]); err != nil {
		renderAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func getAttendanceSheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	sheet, err := be.AttendanceSheet(ctx, teamFromContext(ctx).ID, mux.Vars(r)["event"])
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, sheet)
}

type responseRequest struct {
	Status  models.ResponseStatus `json:"status"`
	Comment string                `json:"comment"`
}

// putResponse records the caller's answer for an event.
func putResponse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req responseRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAPIError(w, r, err)
		return
	}

	res, err := be.SaveResponse(ctx, teamFromContext(ctx).ID, mux.Vars(r)["event"], proto.UserFromContext(ctx).ID(), req.Status, req.Comment)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, res)
}

func getMyAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	limit, err := queryInt(r, "limit")
	if err != nil {
		renderAPIError(w, r, err)
		return
	}

	mine, err := be.MyAttendance(ctx, teamFromContext(ctx).ID, proto.UserFromContext(ctx).ID(), limit)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, mine)
}

func getLineupCandidates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	cs, err := be.LineupCandidates(ctx, teamFromContext(ctx).ID, mux.Vars(r)["event"])
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, cs)
}

func putLineup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var in backend.LineupInput
	if err := decodeJSON(r, &in); err != nil {
		renderAPIError(w, r, err)
		return
	}

	lineup, err := be.SaveLineup(ctx, proto.UserFromContext(ctx), teamFromContext(ctx).ID, mux.Vars(r)["event"], in)
	if err != nil {
		renderAPIError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, lineup)
}

// getStats returns the attendance rates of the team. Failures degrade to
// empty stats.
func getStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	stats, err := be.ComputeRates(ctx, teamFromContext(ctx).ID)
	if err != nil {
		log.FromContext(ctx).Error("failed to compute attendance rates", "err", err)
		stats = backend.AttendanceStats{Members: []backend.MemberRate{}}
	}
	renderJSON(w, http.StatusOK, stats)
}
