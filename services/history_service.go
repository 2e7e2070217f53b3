// services/history_service.go - Pick history reconstruction (read path)
package services

import (
	"math"
	"sort"
	"time"

	"fairway/models"

	"gorm.io/gorm"
)

// HistoryRow is one row of the fan-out join feeding the reconciler:
// schedule tournament × pick × field entry × result × score, any of
// the optional legs may be null. Several rows can describe the same
// tournament with different completeness; Reconcile picks one.
type HistoryRow struct {
	TournamentID   uint
	TournamentName string
	StartDate      time.Time
	StartTime      *string
	TimeZone       string
	EndDate        time.Time
	IsMajor        bool
	WeekNumber     int

	GolferID        *string
	GolferFirstName *string
	GolferLastName  *string

	Result     *string
	Status     *string
	ScoreToPar *int

	Score           *int
	IsNoPick        *bool
	IsDuplicatePick *bool
}

// HistoryEntry is the single canonical record emitted per tournament.
type HistoryEntry struct {
	TournamentID   uint    `json:"tournament_id"`
	TournamentName string  `json:"tournament"`
	StartDate      string  `json:"start_date"`
	WeekNumber     int     `json:"week_number"`
	IsMajor        bool    `json:"is_major"`
	IsFuture       bool    `json:"is_future"`
	GolferName     string  `json:"golfer,omitempty"`
	Position       string  `json:"position,omitempty"`
	Status         string  `json:"status,omitempty"`
	ScoreToPar     *int    `json:"score_to_par,omitempty"`
	Points         float64 `json:"points"`
	NoPick         bool    `json:"no_pick"`
	DuplicatePick  bool    `json:"duplicate_pick"`
}

type HistorySummary struct {
	TotalPicks     int     `json:"total_picks"`
	TotalPoints    float64 `json:"total_points"`
	MajorsPlayed   int     `json:"majors_played"`
	MissedPicks    int     `json:"missed_picks"`
	DuplicatePicks int     `json:"duplicate_picks"`
	Wins           int     `json:"wins"`
}

// winningPosition is the literal first-place marker in result rows.
const winningPosition = "1"

type HistoryService struct {
	db      *gorm.DB
	windows *WindowResolver
	clock   Clock
}

func NewHistoryService(db *gorm.DB, windows *WindowResolver, clock Clock) *HistoryService {
	return &HistoryService{db: db, windows: windows, clock: clock}
}

// Reconcile reduces raw join rows to one entry per tournament and
// classifies each against now.
//
// Reduction order within a tournament group: a row carrying a score
// value beats any scoreless row, whatever its other legs look like.
// Among several scored rows the later-observed one wins; the join
// shape should never produce that case, and the tie rule exists so
// the reduction stays total if it does.
func (s *HistoryService) Reconcile(rows []HistoryRow, now time.Time) ([]HistoryEntry, error) {
	best := make(map[uint]HistoryRow)
	order := make([]uint, 0, len(rows))

	for _, row := range rows {
		current, seen := best[row.TournamentID]
		if !seen {
			best[row.TournamentID] = row
			order = append(order, row.TournamentID)
			continue
		}
		if current.Score == nil || row.Score != nil {
			best[row.TournamentID] = row
		}
	}

	entries := make([]HistoryEntry, 0, len(order))
	starts := make(map[uint]time.Time, len(order))
	for _, id := range order {
		row := best[id]
		t := &models.Tournament{
			ID:        row.TournamentID,
			StartDate: row.StartDate,
			StartTime: row.StartTime,
			TimeZone:  row.TimeZone,
			EndDate:   row.EndDate,
		}
		start, err := s.windows.StartInstant(t)
		if err != nil {
			return nil, err
		}
		starts[id] = start
		status, err := s.windows.Status(t, now)
		if err != nil {
			return nil, err
		}

		entry := HistoryEntry{
			TournamentID:   row.TournamentID,
			TournamentName: row.TournamentName,
			StartDate:      row.StartDate.Format("2006-01-02"),
			WeekNumber:     row.WeekNumber,
			IsMajor:        row.IsMajor,
		}

		if status == StatusFuture {
			// Nothing to show yet: no golfer, no result, zero points.
			entry.IsFuture = true
			entries = append(entries, entry)
			continue
		}

		if row.GolferFirstName != nil && row.GolferLastName != nil {
			entry.GolferName = *row.GolferFirstName + " " + *row.GolferLastName
		}
		if row.Result != nil {
			entry.Position = *row.Result
		}
		if row.Status != nil {
			entry.Status = *row.Status
		}
		entry.ScoreToPar = row.ScoreToPar
		if row.Score != nil {
			entry.Points = float64(*row.Score) / 100
		}
		if row.IsNoPick != nil {
			entry.NoPick = *row.IsNoPick
		}
		if row.IsDuplicatePick != nil {
			entry.DuplicatePick = *row.IsDuplicatePick
		}
		entries = append(entries, entry)
	}

	// Order by start instant, not calendar date: two stops on the same
	// day still sort by tee time.
	sort.SliceStable(entries, func(i, j int) bool {
		return starts[entries[i].TournamentID].Before(starts[entries[j].TournamentID])
	})
	return entries, nil
}

// Summarize derives the rollup counters from an emitted history.
func Summarize(entries []HistoryEntry) HistorySummary {
	var sum HistorySummary
	for _, e := range entries {
		sum.TotalPoints += e.Points
		if e.IsFuture {
			continue
		}
		sum.TotalPicks++
		if e.IsMajor {
			sum.MajorsPlayed++
		}
		if e.NoPick {
			sum.MissedPicks++
		}
		if e.DuplicatePick {
			sum.DuplicatePicks++
		}
		if e.Position == winningPosition {
			sum.Wins++
		}
	}
	sum.TotalPoints = math.Round(sum.TotalPoints*100) / 100
	return sum
}

// MemberHistory loads the fan-out join for one league member and
// returns the reconciled history plus its summary.
func (s *HistoryService) MemberHistory(memberID uint) ([]HistoryEntry, HistorySummary, error) {
	var member models.LeagueMember
	if err := s.db.Preload("League").First(&member, memberID).Error; err != nil {
		return nil, HistorySummary{}, ErrNotFound
	}
	if member.League == nil || member.League.ScheduleID == nil {
		return nil, HistorySummary{}, ErrNotFound
	}

	var rows []HistoryRow
	err := s.db.Raw(`
		SELECT
			t.id            AS tournament_id,
			t.name          AS tournament_name,
			t.start_date    AS start_date,
			t.start_time    AS start_time,
			t.time_zone     AS time_zone,
			t.end_date      AS end_date,
			t.is_major      AS is_major,
			st.week_number  AS week_number,
			g.id            AS golfer_id,
			g.first_name    AS golfer_first_name,
			g.last_name     AS golfer_last_name,
			tgr.result      AS result,
			tgr.status      AS status,
			tgr.score_to_par AS score_to_par,
			s.score         AS score,
			s.is_no_pick    AS is_no_pick,
			s.is_duplicate_pick AS is_duplicate_pick
		FROM schedule_tournaments st
		JOIN tournaments t ON t.id = st.tournament_id
		LEFT JOIN picks p
			ON p.tournament_id = t.id
			AND p.league_member_id = ?
			AND p.is_most_recent = TRUE
		LEFT JOIN golfers g ON g.id = p.golfer_id
		LEFT JOIN tournament_golfers tg
			ON tg.tournament_id = t.id
			AND tg.golfer_id = p.golfer_id
			AND tg.is_most_recent = TRUE
		LEFT JOIN tournament_golfer_results tgr
			ON tgr.tournament_golfer_id = tg.id
		LEFT JOIN league_member_tournament_scores s
			ON s.tournament_id = t.id
			AND s.league_member_id = ?
		WHERE st.schedule_id = ?
		ORDER BY t.start_date, t.start_time
	`, memberID, memberID, *member.League.ScheduleID).Scan(&rows).Error
	if err != nil {
		return nil, HistorySummary{}, err
	}

	entries, err := s.Reconcile(rows, s.clock.Now())
	if err != nil {
		return nil, HistorySummary{}, err
	}
	return entries, Summarize(entries), nil
}
