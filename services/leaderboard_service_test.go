// services/leaderboard_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortAndRank_OrdersByPointsDescending(t *testing.T) {
	rows := []LeaderboardRow{
		{LeagueMemberID: 1, DisplayName: "Low", TotalPoints: 500},
		{LeagueMemberID: 2, DisplayName: "High", TotalPoints: 12000},
		{LeagueMemberID: 3, DisplayName: "Mid", TotalPoints: 7500},
	}

	SortAndRank(rows)

	assert.Equal(t, "High", rows[0].DisplayName)
	assert.Equal(t, "Mid", rows[1].DisplayName)
	assert.Equal(t, "Low", rows[2].DisplayName)
	for i, r := range rows {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestSortAndRank_TiesBreakOnMemberID(t *testing.T) {
	rows := []LeaderboardRow{
		{LeagueMemberID: 9, TotalPoints: 1000},
		{LeagueMemberID: 2, TotalPoints: 1000},
	}

	SortAndRank(rows)

	assert.Equal(t, uint(2), rows[0].LeagueMemberID)
	assert.Equal(t, uint(9), rows[1].LeagueMemberID)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 2, rows[1].Rank)
}

func TestSortAndRank_SeasonScenario(t *testing.T) {
	// Member 1 has a normal finish, a missed pick penalty, and a win.
	// Member 2 has no score rows at all; the rollup still seats them
	// with zero totals, behind member 1.
	rows := []LeaderboardRow{
		{LeagueMemberID: 2, DisplayName: "Empty", TotalPoints: 0, MissedPicks: 0, Wins: 0},
		{LeagueMemberID: 1, DisplayName: "Active", TotalPoints: 500 - 500 + 10000, MissedPicks: 1, Wins: 1},
	}

	SortAndRank(rows)

	active := rows[0]
	assert.Equal(t, 1, active.Rank)
	assert.Equal(t, 10000, active.TotalPoints)
	assert.Equal(t, 1, active.MissedPicks)
	assert.Equal(t, 1, active.Wins)

	empty := rows[1]
	assert.Equal(t, 2, empty.Rank)
	assert.Zero(t, empty.TotalPoints)
}

func TestSortAndRank_Empty(t *testing.T) {
	var rows []LeaderboardRow
	SortAndRank(rows)
	assert.Empty(t, rows)
}
