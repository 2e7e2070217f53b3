// services/window_test.go
package services

import (
	"testing"
	"time"

	"fairway/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTournament(startDate, startTime, zone, endDate string) *models.Tournament {
	start, _ := time.Parse("2006-01-02", startDate)
	end, _ := time.Parse("2006-01-02", endDate)
	t := &models.Tournament{
		ID:        1,
		Year:      start.Year(),
		Name:      "Test Open",
		StartDate: start,
		EndDate:   end,
		TimeZone:  zone,
	}
	if startTime != "" {
		t.StartTime = strPtr(startTime)
	}
	return t
}

func TestPickWindow_ThursdayStart(t *testing.T) {
	// Thursday 2024-06-13 08:30 in New York. The window opens the
	// Monday of that week at 17:00 local and closes at the tee-off
	// instant.
	tour := newTournament("2024-06-13", "08:30", "America/New_York", "2024-06-16")

	r := NewWindowResolver(FixedClock{})
	open, close, err := r.PickWindow(tour)
	require.NoError(t, err)

	// Monday 2024-06-10 17:00 EDT = 21:00 UTC.
	assert.Equal(t, time.Date(2024, 6, 10, 21, 0, 0, 0, time.UTC), open)
	assert.Equal(t, time.Date(2024, 6, 13, 12, 30, 0, 0, time.UTC), close)
}

func TestPickWindow_MondayMorningStartSlidesBack(t *testing.T) {
	// A Monday tournament teeing off at 07:00 closes before that
	// Monday's 17:00 open, so the open slides back a full week.
	tour := newTournament("2024-06-10", "07:00", "America/New_York", "2024-06-13")

	r := NewWindowResolver(FixedClock{})
	open, close, err := r.PickWindow(tour)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 3, 21, 0, 0, 0, time.UTC), open)
	assert.Equal(t, time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC), close)
	assert.True(t, open.Before(close))
}

func TestPickWindow_DefaultZoneAndMidnight(t *testing.T) {
	tour := newTournament("2024-06-13", "", "", "2024-06-16")

	r := NewWindowResolver(FixedClock{})
	open, close, err := r.PickWindow(tour)
	require.NoError(t, err)

	// Midnight Thursday in the default zone.
	assert.Equal(t, time.Date(2024, 6, 13, 4, 0, 0, 0, time.UTC), close)
	assert.Equal(t, time.Date(2024, 6, 10, 21, 0, 0, 0, time.UTC), open)
}

func TestPickWindow_UnknownZone(t *testing.T) {
	tour := newTournament("2024-06-13", "08:30", "Not/A_Zone", "2024-06-16")

	r := NewWindowResolver(FixedClock{})
	_, _, err := r.PickWindow(tour)
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestStatus_FutureLivePast(t *testing.T) {
	tour := newTournament("2024-06-13", "08:30", "America/New_York", "2024-06-16")
	r := NewWindowResolver(FixedClock{})

	cases := []struct {
		name string
		now  time.Time
		want TournamentStatus
	}{
		{"before start instant", time.Date(2024, 6, 13, 12, 29, 59, 0, time.UTC), StatusFuture},
		{"at start instant", time.Date(2024, 6, 13, 12, 30, 0, 0, time.UTC), StatusLive},
		{"mid tournament", time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC), StatusLive},
		// 22:00 local Sunday evening, final round just finished.
		{"end date evening still live", time.Date(2024, 6, 17, 2, 0, 0, 0, time.UTC), StatusLive},
		// Past only once local "today" is after the end date.
		{"local midnight after end", time.Date(2024, 6, 17, 4, 1, 0, 0, time.UTC), StatusPast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Status(tour, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsOpen_Boundaries(t *testing.T) {
	tour := newTournament("2024-06-13", "08:30", "America/New_York", "2024-06-16")
	r := NewWindowResolver(FixedClock{})

	open := time.Date(2024, 6, 10, 21, 0, 0, 0, time.UTC)
	close := time.Date(2024, 6, 13, 12, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before open", open.Add(-time.Second), false},
		{"at open", open, true},
		{"inside window", open.Add(24 * time.Hour), true},
		{"just before close", close.Add(-time.Second), true},
		{"at close", close, false},
		{"after close", close.Add(time.Second), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.IsOpen(tour, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
