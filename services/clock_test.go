// services/clock_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadZone_EmptyUsesDefault(t *testing.T) {
	loc, err := LoadZone("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeZone, loc.String())
}

func TestLoadZone_UnknownName(t *testing.T) {
	_, err := LoadZone("America/Not_A_City")
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestLocalize_SummerOffset(t *testing.T) {
	start := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	tod := "08:30"

	got, err := Localize(start, &tod, "America/New_York")
	require.NoError(t, err)

	// EDT is UTC-4 in June.
	assert.Equal(t, time.Date(2024, 6, 13, 12, 30, 0, 0, time.UTC), got)
}

func TestLocalize_WinterOffset(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tod := "08:30"

	got, err := Localize(start, &tod, "America/New_York")
	require.NoError(t, err)

	// EST is UTC-5 in January.
	assert.Equal(t, time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC), got)
}

func TestLocalize_NilTimeOfDayMeansMidnight(t *testing.T) {
	start := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)

	got, err := Localize(start, nil, "America/New_York")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 13, 4, 0, 0, 0, time.UTC), got)
}

func TestLocalize_BadTimeOfDay(t *testing.T) {
	start := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	tod := "8:30am"

	_, err := Localize(start, &tod, "America/New_York")
	assert.Error(t, err)
}

func TestLocalize_UnknownZonePropagates(t *testing.T) {
	start := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)

	_, err := Localize(start, nil, "Mars/Olympus_Mons")
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC)
	clock := FixedClock{Instant: instant}
	assert.Equal(t, instant, clock.Now())
	assert.Equal(t, instant, clock.Now())
}
