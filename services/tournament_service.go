// services/tournament_service.go - Schedule queries and roster reads
package services

import (
	"fairway/models"

	"gorm.io/gorm"
)

type TournamentService struct {
	db        *gorm.DB
	navigator *ScheduleNavigator
	windows   *WindowResolver
	clock     Clock
}

func NewTournamentService(db *gorm.DB, navigator *ScheduleNavigator, windows *WindowResolver, clock Clock) *TournamentService {
	return &TournamentService{db: db, navigator: navigator, windows: windows, clock: clock}
}

// ScheduleEntries loads a league's season schedule in week order with
// tournaments preloaded.
func (s *TournamentService) ScheduleEntries(leagueID uint) ([]models.ScheduleTournament, error) {
	var league models.League
	if err := s.db.First(&league, leagueID).Error; err != nil {
		return nil, ErrNotFound
	}
	if league.ScheduleID == nil {
		return nil, ErrNotFound
	}

	var entries []models.ScheduleTournament
	err := s.db.Preload("Tournament").
		Where("schedule_id = ?", *league.ScheduleID).
		Order("week_number").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// TournamentInfo is the wire shape for a schedule position, the
// tournament plus its window state at the time of the call.
type TournamentInfo struct {
	Tournament  *models.Tournament `json:"tournament"`
	WeekNumber  int                `json:"week_number"`
	Status      TournamentStatus   `json:"status"`
	WindowOpen  string             `json:"window_open"`
	WindowClose string             `json:"window_close"`
}

func (s *TournamentService) describe(entry *models.ScheduleTournament) (*TournamentInfo, error) {
	status, err := s.windows.Status(entry.Tournament, s.clock.Now())
	if err != nil {
		return nil, err
	}
	open, close, err := s.windows.PickWindow(entry.Tournament)
	if err != nil {
		return nil, err
	}
	return &TournamentInfo{
		Tournament:  entry.Tournament,
		WeekNumber:  entry.WeekNumber,
		Status:      status,
		WindowOpen:  open.Format("2006-01-02T15:04:05Z07:00"),
		WindowClose: close.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// Upcoming returns the league's next not-yet-started tournament, nil
// when the season has run out.
func (s *TournamentService) Upcoming(leagueID uint) (*TournamentInfo, error) {
	entries, err := s.ScheduleEntries(leagueID)
	if err != nil {
		return nil, err
	}
	entry, err := s.navigator.NextUpcoming(entries, s.clock.Now())
	if err != nil || entry == nil {
		return nil, err
	}
	return s.describe(entry)
}

// MostRecent returns the league's latest started tournament, nil when
// none has started yet.
func (s *TournamentService) MostRecent(leagueID uint) (*TournamentInfo, error) {
	entries, err := s.ScheduleEntries(leagueID)
	if err != nil {
		return nil, err
	}
	entry, err := s.navigator.MostRecentStarted(entries, s.clock.Now())
	if err != nil || entry == nil {
		return nil, err
	}
	return s.describe(entry)
}

// Tournament loads one tournament row.
func (s *TournamentService) Tournament(id uint) (*models.Tournament, error) {
	var t models.Tournament
	if err := s.db.First(&t, id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &t, nil
}

// Roster returns the current field snapshot for a tournament.
func (s *TournamentService) Roster(tournamentID uint) ([]models.TournamentGolfer, error) {
	var field []models.TournamentGolfer
	err := s.db.Preload("Golfer").
		Where("tournament_id = ? AND is_most_recent = ?", tournamentID, true).
		Find(&field).Error
	return field, err
}

// DropdownGolfer is one golfer in the pick selector: in-field golfers
// sort first, and golfers the member already used elsewhere in the
// season are flagged so the UI can warn about duplicate picks.
type DropdownGolfer struct {
	ID                    string `json:"id"`
	FullName              string `json:"full_name"`
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	PhotoURL              string `json:"photo_url"`
	IsPlayingInTournament bool   `json:"is_playing_in_tournament"`
	HasBeenPicked         bool   `json:"has_been_picked"`
}

// Dropdown builds the golfer selector for one member and tournament.
func (s *TournamentService) Dropdown(tournamentID, memberID uint) ([]DropdownGolfer, error) {
	var rows []DropdownGolfer
	err := s.db.Raw(`
		SELECT
			g.id, g.full_name, g.first_name, g.last_name, g.photo_url,
			tg.id IS NOT NULL AS is_playing_in_tournament,
			p.id IS NOT NULL  AS has_been_picked
		FROM golfers g
		LEFT JOIN tournament_golfers tg
			ON tg.golfer_id = g.id
			AND tg.tournament_id = ?
			AND tg.is_most_recent = TRUE
		LEFT JOIN picks p
			ON p.golfer_id = g.id
			AND p.league_member_id = ?
			AND p.is_most_recent = TRUE
			AND p.tournament_id <> ?
		ORDER BY is_playing_in_tournament DESC, g.full_name
	`, tournamentID, memberID, tournamentID).Scan(&rows).Error
	return rows, err
}

// MemberWeekPick is one line of the current-week pick grid.
type MemberWeekPick struct {
	Member struct {
		ID        uint   `json:"id"`
		Name      string `json:"name"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		PhotoURL  string `json:"photo_url"`
	} `json:"member"`
	Pick *struct {
		GolferID   string `json:"golfer_id"`
		GolferName string `json:"golfer_name"`
	} `json:"pick"`
}

// WeekPicks is the live tournament plus every member's most recent
// pick for it. Members without a pick appear with a nil pick.
type WeekPicks struct {
	Tournament *TournamentInfo  `json:"tournament"`
	Picks      []MemberWeekPick `json:"picks"`
}

// CurrentWeekPicks resolves the league's live (or latest started)
// tournament and collects the member pick grid for it.
func (s *TournamentService) CurrentWeekPicks(leagueID uint) (*WeekPicks, error) {
	info, err := s.MostRecent(leagueID)
	if err != nil || info == nil {
		return nil, err
	}

	type row struct {
		MemberID   uint
		FirstName  string
		LastName   string
		Name       string
		PhotoURL   string
		GolferID   *string
		GolferName *string
	}
	var rows []row
	err = s.db.Raw(`
		SELECT
			lm.id          AS member_id,
			u.first_name   AS first_name,
			u.last_name    AS last_name,
			u.display_name AS name,
			u.avatar_url   AS photo_url,
			g.id           AS golfer_id,
			g.full_name    AS golfer_name
		FROM league_members lm
		JOIN users u ON u.id = lm.user_id
		LEFT JOIN picks p
			ON p.league_member_id = lm.id
			AND p.tournament_id = ?
			AND p.is_most_recent = TRUE
		LEFT JOIN golfers g ON g.id = p.golfer_id
		WHERE lm.league_id = ?
		ORDER BY u.last_name, u.first_name
	`, info.Tournament.ID, leagueID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	picks := make([]MemberWeekPick, 0, len(rows))
	for _, r := range rows {
		var p MemberWeekPick
		p.Member.ID = r.MemberID
		p.Member.Name = r.Name
		p.Member.FirstName = r.FirstName
		p.Member.LastName = r.LastName
		p.Member.PhotoURL = r.PhotoURL
		if r.GolferID != nil && r.GolferName != nil {
			p.Pick = &struct {
				GolferID   string `json:"golfer_id"`
				GolferName string `json:"golfer_name"`
			}{GolferID: *r.GolferID, GolferName: *r.GolferName}
		}
		picks = append(picks, p)
	}

	return &WeekPicks{Tournament: info, Picks: picks}, nil
}
