// models/golfer.go
package models

import "time"

type Golfer struct {
	ID        string `gorm:"primaryKey;size:9" json:"id"`
	FirstName string `gorm:"not null;size:50" json:"first_name"`
	LastName  string `gorm:"not null;size:50" json:"last_name"`
	FullName  string `gorm:"not null;size:100;index" json:"full_name"`
	PhotoURL  string `gorm:"size:512" json:"photo_url"`
}

// TournamentGolfer is one roster snapshot row. Each field-ingestion
// pass supersedes the previous rows for the tournament/year by
// flipping their IsMostRecent flag, mirroring the pick ledger's
// versioning discipline. Rows are never deleted.
type TournamentGolfer struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	TournamentID uint        `gorm:"not null;index" json:"tournament_id"`
	Tournament   *Tournament `gorm:"foreignKey:TournamentID" json:"tournament,omitempty"`
	GolferID     string      `gorm:"not null;size:9;index" json:"golfer_id"`
	Golfer       *Golfer     `gorm:"foreignKey:GolferID" json:"golfer,omitempty"`
	Year         int         `gorm:"not null" json:"year"`
	IsMostRecent bool        `gorm:"not null;default:true;index" json:"is_most_recent"`
	IsActive     bool        `gorm:"not null;default:true" json:"is_active"`
	IsAlternate  bool        `gorm:"not null;default:false" json:"is_alternate"`
	IsInjured    bool        `gorm:"not null;default:false" json:"is_injured"`
	TimestampUTC time.Time   `gorm:"not null" json:"timestamp_utc"`
}

// TournamentGolferResult holds a golfer's finish for one tournament.
// Result is the position string as published ("1", "T2", "CUT", ...).
// Produced by the external scoring job; read-only here.
type TournamentGolferResult struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	TournamentGolferID uint              `gorm:"not null;uniqueIndex" json:"tournament_golfer_id"`
	TournamentGolfer   *TournamentGolfer `gorm:"foreignKey:TournamentGolferID" json:"tournament_golfer,omitempty"`
	Result             string            `gorm:"size:10" json:"result"`
	Status             string            `gorm:"size:20" json:"status"`
	ScoreToPar         *int              `json:"score_to_par"`
}

func (Golfer) TableName() string {
	return "golfers"
}

func (TournamentGolfer) TableName() string {
	return "tournament_golfers"
}

func (TournamentGolferResult) TableName() string {
	return "tournament_golfer_results"
}
