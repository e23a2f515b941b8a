package backend

import (
	"context"
	"math"
	"sort"

	"github.com/dugout-app/dugout/pkg/db/models"
)

// MemberRate is one member's attendance over all events of a team.
type MemberRate struct {
	UID   string  `json:"uid"`
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

// AttendanceStats is a team's attendance summary. A team without events has
// TotalEvents 0 and no rows.
type AttendanceStats struct {
	TotalEvents int          `json:"totalEvents"`
	Members     []MemberRate `json:"members"`
}

// Empty reports whether there is nothing to show.
func (s AttendanceStats) Empty() bool {
	return s.TotalEvents == 0
}

// attendanceRate returns count/total as a percentage rounded to one decimal.
func attendanceRate(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

// ComputeRates computes the attendance rate of every active member of team
// across all of its events, highest first. Members with equal rates keep
// their join order.
func (d *Backend) ComputeRates(ctx context.Context, teamID string) (AttendanceStats, error) {
	members, err := d.store.ListMembers(ctx, d.db, teamID, true)
	if err != nil {
		return AttendanceStats{}, storeError(err, nil)
	}
	total, err := d.store.CountEvents(ctx, d.db, teamID)
	if err != nil {
		return AttendanceStats{}, storeError(err, nil)
	}
	if total == 0 {
		return AttendanceStats{Members: []MemberRate{}}, nil
	}

	responses, err := d.store.ListResponsesByTeamStatus(ctx, d.db, teamID, models.AttendingStatuses)
	if err != nil {
		return AttendanceStats{}, storeError(err, nil)
	}
	counts := make(map[string]int, len(members))
	for _, r := range responses {
		counts[r.UID]++
	}

	rates := make([]MemberRate, 0, len(members))
	for _, m := range members {
		c := counts[m.UID]
		rates = append(rates, MemberRate{
			UID:   m.UID,
			Name:  displayName(m),
			Count: c,
			Rate:  attendanceRate(c, total),
		})
	}
	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].Rate > rates[j].Rate
	})

	return AttendanceStats{TotalEvents: total, Members: rates}, nil
}
