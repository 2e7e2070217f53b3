// services/schedule_navigator.go - Finding the current and next tournament
package services

import (
	"sort"
	"time"

	"fairway/models"
)

// ScheduleNavigator walks a league's season schedule to find the most
// recently started tournament and the next one still to come. Entries
// must carry their Tournament preloaded.
type ScheduleNavigator struct {
	windows *WindowResolver
}

func NewScheduleNavigator(windows *WindowResolver) *ScheduleNavigator {
	return &ScheduleNavigator{windows: windows}
}

// byStart orders entries chronologically by civil (start_date,
// start_time), independent of insertion or week-number order. A
// schedule whose week numbers disagree with its dates still scans;
// the result just follows the dates (cmd/schedule-lint flags those
// schedules offline).
func byStart(entries []models.ScheduleTournament) []models.ScheduleTournament {
	sorted := make([]models.ScheduleTournament, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].Tournament, sorted[j].Tournament
		if !ti.StartDate.Equal(tj.StartDate) {
			return ti.StartDate.Before(tj.StartDate)
		}
		return startTimeKey(ti) < startTimeKey(tj)
	})
	return sorted
}

func startTimeKey(t *models.Tournament) string {
	if t.StartTime == nil {
		return "00:00"
	}
	return *t.StartTime
}

// MostRecentStarted returns the entry with the latest start instant at
// or before now, or nil when nothing has started. A date-only
// prefilter can admit a tournament whose precise instant is still
// ahead (late local tee time), so each candidate's instant is
// re-checked walking backward.
func (n *ScheduleNavigator) MostRecentStarted(entries []models.ScheduleTournament, now time.Time) (*models.ScheduleTournament, error) {
	sorted := byStart(entries)
	for i := len(sorted) - 1; i >= 0; i-- {
		entry := sorted[i]
		start, err := n.windows.StartInstant(entry.Tournament)
		if err != nil {
			return nil, err
		}
		if !start.After(now) {
			return &entry, nil
		}
	}
	return nil, nil
}

// NextUpcoming returns the entry with the earliest start instant
// strictly after now, or nil when the season is over. The instant
// re-check is mandatory: the chronologically first date-qualified
// candidate may already have teed off in its own zone, in which case
// the scan advances to the next one.
func (n *ScheduleNavigator) NextUpcoming(entries []models.ScheduleTournament, now time.Time) (*models.ScheduleTournament, error) {
	sorted := byStart(entries)
	for _, entry := range sorted {
		start, err := n.windows.StartInstant(entry.Tournament)
		if err != nil {
			return nil, err
		}
		if start.After(now) {
			return &entry, nil
		}
	}
	return nil, nil
}
