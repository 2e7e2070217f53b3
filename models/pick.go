// models/pick.go
package models

import "time"

// Pick is one entry in the append-only pick ledger. A resubmission
// never updates a row in place: the prior row's IsMostRecent flag is
// flipped to false and a fresh row is inserted in the same
// transaction, so at most one row per (league_member, tournament) is
// most-recent at any instant and the full history survives.
type Pick struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	LeagueMemberID uint          `gorm:"not null;index:idx_picks_member_tournament" json:"league_member_id"`
	LeagueMember   *LeagueMember `gorm:"foreignKey:LeagueMemberID" json:"league_member,omitempty"`
	TournamentID   uint          `gorm:"not null;index:idx_picks_member_tournament" json:"tournament_id"`
	Tournament     *Tournament   `gorm:"foreignKey:TournamentID" json:"tournament,omitempty"`
	GolferID       string        `gorm:"not null;size:9" json:"golfer_id"`
	Golfer         *Golfer       `gorm:"foreignKey:GolferID" json:"golfer,omitempty"`
	Year           int           `gorm:"not null" json:"year"`
	TimestampUTC   time.Time     `gorm:"not null" json:"timestamp_utc"`
	IsMostRecent   bool          `gorm:"not null;default:true" json:"is_most_recent"`
}

func (Pick) TableName() string {
	return "picks"
}
