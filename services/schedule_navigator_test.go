// services/schedule_navigator_test.go
package services

import (
	"testing"
	"time"

	"fairway/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(week int, tour *models.Tournament) models.ScheduleTournament {
	return models.ScheduleTournament{
		ID:           uint(week),
		TournamentID: tour.ID,
		Tournament:   tour,
		WeekNumber:   week,
	}
}

func testNavigator() *ScheduleNavigator {
	return NewScheduleNavigator(NewWindowResolver(FixedClock{}))
}

func TestNavigator_EmptySchedule(t *testing.T) {
	n := testNavigator()
	now := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)

	recent, err := n.MostRecentStarted(nil, now)
	require.NoError(t, err)
	assert.Nil(t, recent)

	next, err := n.NextUpcoming(nil, now)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNavigator_MidSeason(t *testing.T) {
	n := testNavigator()

	t1 := newTournament("2024-06-06", "08:00", "America/New_York", "2024-06-09")
	t1.ID = 1
	t2 := newTournament("2024-06-13", "08:30", "America/New_York", "2024-06-16")
	t2.ID = 2
	entries := []models.ScheduleTournament{entry(1, t1), entry(2, t2)}

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	recent, err := n.MostRecentStarted(entries, now)
	require.NoError(t, err)
	require.NotNil(t, recent)
	assert.Equal(t, uint(1), recent.Tournament.ID)

	next, err := n.NextUpcoming(entries, now)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, uint(2), next.Tournament.ID)
}

func TestNavigator_InstantRecheckOnStartDay(t *testing.T) {
	// On the start date but before the tee-off instant: the tournament
	// is date-qualified for "most recent" yet its instant is still
	// ahead, so the scan must skip it.
	n := testNavigator()

	t1 := newTournament("2024-06-06", "08:00", "America/New_York", "2024-06-09")
	t1.ID = 1
	t2 := newTournament("2024-06-13", "08:30", "America/New_York", "2024-06-16")
	t2.ID = 2
	entries := []models.ScheduleTournament{entry(1, t1), entry(2, t2)}

	// 10:00 UTC on the 13th = 06:00 in New York, tee-off is 08:30.
	now := time.Date(2024, 6, 13, 10, 0, 0, 0, time.UTC)

	recent, err := n.MostRecentStarted(entries, now)
	require.NoError(t, err)
	require.NotNil(t, recent)
	assert.Equal(t, uint(1), recent.Tournament.ID)

	next, err := n.NextUpcoming(entries, now)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, uint(2), next.Tournament.ID)

	// One minute after tee-off the same tournament flips sides.
	now = time.Date(2024, 6, 13, 12, 31, 0, 0, time.UTC)

	recent, err = n.MostRecentStarted(entries, now)
	require.NoError(t, err)
	require.NotNil(t, recent)
	assert.Equal(t, uint(2), recent.Tournament.ID)

	next, err = n.NextUpcoming(entries, now)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNavigator_AtExactStartInstant(t *testing.T) {
	n := testNavigator()

	tour := newTournament("2024-06-13", "08:30", "America/New_York", "2024-06-16")
	entries := []models.ScheduleTournament{entry(1, tour)}

	now := time.Date(2024, 6, 13, 12, 30, 0, 0, time.UTC)

	// Started at exactly now counts as started.
	recent, err := n.MostRecentStarted(entries, now)
	require.NoError(t, err)
	require.NotNil(t, recent)

	next, err := n.NextUpcoming(entries, now)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNavigator_SortsByDateNotInputOrder(t *testing.T) {
	n := testNavigator()

	t1 := newTournament("2024-06-06", "08:00", "America/New_York", "2024-06-09")
	t1.ID = 1
	t2 := newTournament("2024-06-13", "08:30", "America/New_York", "2024-06-16")
	t2.ID = 2
	// Reversed input order.
	entries := []models.ScheduleTournament{entry(2, t2), entry(1, t1)}

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	next, err := n.NextUpcoming(entries, now)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, uint(1), next.Tournament.ID)
}

func TestNavigator_ZoneErrorPropagates(t *testing.T) {
	n := testNavigator()

	bad := newTournament("2024-06-13", "08:30", "Not/A_Zone", "2024-06-16")
	entries := []models.ScheduleTournament{entry(1, bad)}

	_, err := n.NextUpcoming(entries, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrUnknownZone)
}
