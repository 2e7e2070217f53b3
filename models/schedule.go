// models/schedule.go
package models

import "time"

// Schedule is a season's ordered tournament list, shared by every
// league that references it.
type Schedule struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:100" json:"name"`
	Year int    `gorm:"not null;index" json:"year"`

	CreatedAt time.Time `json:"created_at"`

	Tournaments []ScheduleTournament `gorm:"foreignKey:ScheduleID" json:"tournaments,omitempty"`
}

// ScheduleTournament places one tournament into a schedule week. Week
// numbers are expected to increase with start dates but that is not
// enforced here; cmd/schedule-lint checks it offline.
type ScheduleTournament struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	ScheduleID          uint        `gorm:"not null;index" json:"schedule_id"`
	TournamentID        uint        `gorm:"not null;index" json:"tournament_id"`
	Tournament          *Tournament `gorm:"foreignKey:TournamentID" json:"tournament,omitempty"`
	WeekNumber          int         `gorm:"not null" json:"week_number"`
	AllowDuplicatePicks bool        `gorm:"not null;default:false" json:"allow_duplicate_picks"`
}

func (Schedule) TableName() string {
	return "schedules"
}

func (ScheduleTournament) TableName() string {
	return "schedule_tournaments"
}
