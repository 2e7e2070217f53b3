// services/window.go - Tournament status and pick window resolution
package services

import (
	"time"

	"fairway/models"
)

type TournamentStatus string

const (
	StatusFuture TournamentStatus = "future"
	StatusLive   TournamentStatus = "live"
	StatusPast   TournamentStatus = "past"
)

// Pick windows open at 17:00 local time on the Monday of the
// tournament's start week.
const (
	pickWindowOpenHour = 17
)

// WindowResolver computes tournament status and pick windows from a
// tournament's own fields. It never touches storage.
type WindowResolver struct {
	clock Clock
}

func NewWindowResolver(clock Clock) *WindowResolver {
	return &WindowResolver{clock: clock}
}

// StartInstant is the tournament's first tee time as a UTC instant.
func (r *WindowResolver) StartInstant(t *models.Tournament) (time.Time, error) {
	return Localize(t.StartDate, t.StartTime, t.TimeZone)
}

// Status classifies a tournament against now. Future until the start
// instant; past once "today" in the tournament's zone is after the
// end date; live in between.
func (r *WindowResolver) Status(t *models.Tournament, now time.Time) (TournamentStatus, error) {
	start, err := r.StartInstant(t)
	if err != nil {
		return "", err
	}
	if now.Before(start) {
		return StatusFuture, nil
	}

	loc, err := LoadZone(t.TimeZone)
	if err != nil {
		return "", err
	}
	localToday := now.In(loc)
	ty, tm, td := localToday.Date()
	ey, em, ed := t.EndDate.Date()
	if ty > ey || (ty == ey && (tm > em || (tm == em && td > ed))) {
		return StatusPast, nil
	}
	return StatusLive, nil
}

// PickWindow returns the half-open [open, close) submission interval.
// Close is the start instant. Open is 17:00 local on the Monday of the
// start's local week; when the tournament itself tees off on a Monday
// before 17:00 that Monday would open after the close, so the open
// slides back one further week and the window stays "open until
// start".
func (r *WindowResolver) PickWindow(t *models.Tournament) (open, close time.Time, err error) {
	close, err = r.StartInstant(t)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	loc, err := LoadZone(t.TimeZone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	// Monday of the start's local week. time.Weekday counts Sunday as
	// 0, the schedule week starts on Monday.
	daysSinceMonday := (int(t.StartDate.Weekday()) + 6) % 7
	monday := t.StartDate.AddDate(0, 0, -daysSinceMonday)
	openLocal := time.Date(monday.Year(), monday.Month(), monday.Day(), pickWindowOpenHour, 0, 0, 0, loc)

	if !openLocal.UTC().Before(close) {
		monday = monday.AddDate(0, 0, -7)
		openLocal = time.Date(monday.Year(), monday.Month(), monday.Day(), pickWindowOpenHour, 0, 0, 0, loc)
	}
	return openLocal.UTC(), close, nil
}

// IsOpen reports whether a pick may be submitted for the tournament at
// the given instant.
func (r *WindowResolver) IsOpen(t *models.Tournament, now time.Time) (bool, error) {
	open, close, err := r.PickWindow(t)
	if err != nil {
		return false, err
	}
	return !now.Before(open) && now.Before(close), nil
}
