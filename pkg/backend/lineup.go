package backend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"golang.org/x/text/collate"
)

// GuestPlayerName is the display name of the guest player candidate.
const GuestPlayerName = "助っ人"

// Candidate is a player that can fill a lineup slot.
type Candidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SlotCount returns the number of batting slots of a lineup system.
func SlotCount(system string) int {
	return models.LineupSystem(system).SlotCount()
}

// LineupCandidates returns the members attending an event sorted by name,
// followed by the guest player.
func (d *Backend) LineupCandidates(ctx context.Context, teamID, eventID string) ([]Candidate, error) {
	if _, err := d.store.GetEvent(ctx, d.db, teamID, eventID); err != nil {
		return nil, storeError(err, proto.ErrEventNotFound)
	}
	return d.lineupCandidates(ctx, d.db, teamID, eventID)
}

func (d *Backend) lineupCandidates(ctx context.Context, h db.Handler, teamID, eventID string) ([]Candidate, error) {
	responses, err := d.store.ListResponsesByEventStatus(ctx, h, teamID, eventID, models.AttendingStatuses)
	if err != nil {
		return nil, storeError(err, nil)
	}

	uids := make([]string, 0, len(responses))
	for _, r := range responses {
		uids = append(uids, r.UID)
	}
	names, err := d.memberNames(ctx, h, teamID, uids)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(uids)+1)
	for _, uid := range uids {
		candidates = append(candidates, Candidate{ID: uid, Name: names[uid]})
	}

	col := collate.New(d.locale)
	sort.SliceStable(candidates, func(i, j int) bool {
		return col.CompareString(candidates[i].Name, candidates[j].Name) < 0
	})

	return append(candidates, Candidate{ID: models.GuestPlayerID, Name: GuestPlayerName}), nil
}

// LineupRow is one row of the lineup form.
type LineupRow struct {
	Order    int    `json:"order"`
	MemberID string `json:"memberId"`
	Position string `json:"position"`
}

// LineupInput is a submitted lineup form.
type LineupInput struct {
	System      string      `json:"system"`
	Rows        []LineupRow `json:"rows"`
	Memo        string      `json:"memo"`
	IsPublished bool        `json:"isPublished"`
}

// lineupSystem returns the submitted system, NORMAL9 when none is given.
func lineupSystem(system string) (models.LineupSystem, error) {
	s := models.LineupSystem(strings.TrimSpace(system))
	if s == "" {
		return models.SystemNormal9, nil
	}
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown lineup system %q", proto.ErrInvalidArgument, system)
	}
	return s, nil
}

// buildLineup keeps the rows with a selected player whose order fits the
// system, sorted by order. The first row wins when orders repeat. The same
// player may fill several slots.
func buildLineup(in LineupInput) (models.Lineup, error) {
	system, err := lineupSystem(in.System)
	if err != nil {
		return models.Lineup{}, err
	}
	n := system.SlotCount()

	taken := make(map[int]bool, n)
	starting := make([]models.LineupSlot, 0, n)
	for _, row := range in.Rows {
		id := strings.TrimSpace(row.MemberID)
		if id == "" || row.Order < 1 || row.Order > n || taken[row.Order] {
			continue
		}
		taken[row.Order] = true
		starting = append(starting, models.LineupSlot{
			Order:    row.Order,
			MemberID: id,
			Position: strings.TrimSpace(row.Position),
		})
	}
	sort.SliceStable(starting, func(i, j int) bool {
		return starting[i].Order < starting[j].Order
	})

	return models.Lineup{
		System:      system,
		Starting:    starting,
		Memo:        in.Memo,
		IsPublished: in.IsPublished,
	}, nil
}

// SaveLineup replaces the lineup of a game event. Only admins may save
// lineups. Concurrent saves are last-write-wins.
func (d *Backend) SaveLineup(ctx context.Context, caller proto.User, teamID, eventID string, in LineupInput) (models.Lineup, error) {
	if err := d.requireAdmin(ctx, d.db, teamID, caller); err != nil {
		return models.Lineup{}, err
	}

	lineup, err := buildLineup(in)
	if err != nil {
		return models.Lineup{}, err
	}
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		e, err := d.store.GetEvent(ctx, tx, teamID, eventID)
		if err != nil {
			return err
		}
		if !e.Type.IsGame() {
			return proto.ErrNotGameEvent
		}
		return d.store.SetEventLineup(ctx, tx, teamID, eventID, lineup)
	}); err != nil {
		return models.Lineup{}, storeError(err, proto.ErrEventNotFound)
	}

	if dups := lineup.DuplicateMembers(); len(dups) > 0 {
		d.logger.Warn("lineup places members in several slots", "team", teamID, "event", eventID, "members", dups)
	}
	return lineup, nil
}

// LineupRowView is a lineup row with the player's name resolved.
type LineupRowView struct {
	Order    int    `json:"order"`
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// LineupView is the lineup block of an event page. Editable views carry
// every slot of the system and the data needed by the editor.
type LineupView struct {
	Editable    bool                  `json:"editable"`
	System      models.LineupSystem   `json:"system"`
	SlotCount   int                   `json:"slotCount"`
	Rows        []LineupRowView       `json:"rows"`
	Memo        string                `json:"memo"`
	IsPublished bool                  `json:"isPublished"`
	Duplicates  []string              `json:"duplicates,omitempty"`
	Candidates  []Candidate           `json:"candidates,omitempty"`
	Positions   []string              `json:"positions,omitempty"`
	Systems     []models.LineupSystem `json:"systems,omitempty"`
}

// EventView is an event as seen by a caller.
type EventView struct {
	Event  models.Event `json:"event"`
	Role   string       `json:"role"`
	Lineup *LineupView  `json:"lineup,omitempty"`
}

// ViewEvent returns an event as seen by caller. The lineup block is only
// present for game events, and only when caller is an admin or the lineup
// is published. Admins get the editor; everyone else a read-only list in
// batting order.
func (d *Backend) ViewEvent(ctx context.Context, caller proto.User, teamID, eventID string) (EventView, error) {
	e, err := d.store.GetEvent(ctx, d.db, teamID, eventID)
	if err != nil {
		return EventView{}, storeError(err, proto.ErrEventNotFound)
	}

	ms := guest
	if caller != nil {
		ms = d.ResolveRole(ctx, teamID, caller.ID())
	}
	view := EventView{Event: e, Role: ms.Role.String()}

	if !e.Type.IsGame() {
		return view, nil
	}
	published := e.Lineup != nil && e.Lineup.IsPublished
	if !ms.IsAdmin() && !published {
		return view, nil
	}

	lineup := models.Lineup{System: models.SystemNormal9}
	if e.Lineup != nil {
		lineup = *e.Lineup
		if lineup.System == "" {
			lineup.System = models.SystemNormal9
		}
	}

	uids := make([]string, 0, len(lineup.Starting))
	for _, s := range lineup.Starting {
		if s.MemberID != models.GuestPlayerID {
			uids = append(uids, s.MemberID)
		}
	}
	names, err := d.memberNames(ctx, d.db, teamID, uids)
	if err != nil {
		return EventView{}, err
	}
	nameOf := func(id string) string {
		if id == models.GuestPlayerID {
			return GuestPlayerName
		}
		return names[id]
	}

	lv := &LineupView{
		Editable:    ms.IsAdmin(),
		System:      lineup.System,
		SlotCount:   lineup.SlotCount(),
		Memo:        lineup.Memo,
		IsPublished: lineup.IsPublished,
	}

	if !lv.Editable {
		for _, s := range lineup.Sorted() {
			lv.Rows = append(lv.Rows, LineupRowView{
				Order:    s.Order,
				MemberID: s.MemberID,
				Name:     nameOf(s.MemberID),
				Position: s.Position,
			})
		}
		view.Lineup = lv
		return view, nil
	}

	lv.Rows = make([]LineupRowView, 0, lv.SlotCount)
	for order := 1; order <= lv.SlotCount; order++ {
		row := LineupRowView{Order: order}
		if s, ok := lineup.Slot(order); ok {
			row.MemberID, row.Name, row.Position = s.MemberID, nameOf(s.MemberID), s.Position
		}
		lv.Rows = append(lv.Rows, row)
	}
	lv.Duplicates = lineup.DuplicateMembers()
	lv.Positions = models.Positions
	lv.Systems = models.Systems
	if lv.Candidates, err = d.lineupCandidates(ctx, d.db, teamID, eventID); err != nil {
		return EventView{}, err
	}

	view.Lineup = lv
	return view, nil
}
