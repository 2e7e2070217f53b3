// services/leaderboard_service.go - League leaderboard rollup
package services

import (
	"sort"

	"fairway/models"

	"gorm.io/gorm"
)

// Score conventions baked into the upstream scoring job's rows: a
// negative value is a missed pick, anything at or above winScore
// (100.00 points in hundredths) is a win.
const winScore = 10000

// LeaderboardRow is one ranked line of a league leaderboard. Points
// stay in hundredths here; handlers divide for display.
type LeaderboardRow struct {
	Rank           int    `json:"rank"`
	UserID         uint   `json:"user_id"`
	DisplayName    string `json:"name"`
	LeagueMemberID uint   `json:"league_member_id"`
	TotalPoints    int    `json:"total_points"`
	MissedPicks    int    `json:"missed_picks"`
	Wins           int    `json:"wins"`
}

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Leaderboard totals every score row per member of the league. Members
// with no score rows still appear, with zero totals: the membership
// table drives the rollup and scores are outer-joined onto it.
func (s *LeaderboardService) Leaderboard(leagueID uint) ([]LeaderboardRow, error) {
	var league models.League
	if err := s.db.First(&league, leagueID).Error; err != nil {
		return nil, ErrNotFound
	}

	var rows []LeaderboardRow
	err := s.db.Raw(`
		SELECT
			u.id               AS user_id,
			u.display_name     AS display_name,
			lm.id              AS league_member_id,
			COALESCE(SUM(s.score), 0)                      AS total_points,
			COUNT(CASE WHEN s.score < 0 THEN 1 END)        AS missed_picks,
			COUNT(CASE WHEN s.score >= ? THEN 1 END)       AS wins
		FROM league_members lm
		JOIN users u ON u.id = lm.user_id
		LEFT JOIN league_member_tournament_scores s ON s.league_member_id = lm.id
		WHERE lm.league_id = ?
		GROUP BY u.id, u.display_name, lm.id
	`, winScore, leagueID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	SortAndRank(rows)
	return rows, nil
}

// SortAndRank orders rows by total points descending and assigns
// 1-based ranks by position (ties share nothing; the member id is the
// deterministic secondary key).
func SortAndRank(rows []LeaderboardRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].LeagueMemberID < rows[j].LeagueMemberID
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
}
