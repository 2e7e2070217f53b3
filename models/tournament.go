// models/tournament.go
package models

import "time"

// Tournament is a single stop on the season calendar. Start date and
// time-of-day are civil values in the tournament's own time zone;
// EndDate is date-only (no end time exists upstream). Rows are created
// by the ingestion job and are read-only to the rest of the service.
type Tournament struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Year       int       `gorm:"not null;index" json:"year"`
	Name       string    `gorm:"not null;size:100" json:"name"`
	Format     string    `gorm:"not null;size:100;default:'stroke'" json:"format"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	StartTime  *string   `gorm:"size:8" json:"start_time"` // "HH:MM", nil means midnight
	TimeZone   string    `gorm:"size:50" json:"time_zone"` // IANA name, empty means default
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	CourseName string    `gorm:"size:100" json:"course_name"`
	City       string    `gorm:"size:50" json:"city"`
	State      string    `gorm:"size:50" json:"state"`
	IsMajor    bool      `gorm:"not null;default:false" json:"is_major"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tournament) TableName() string {
	return "tournaments"
}
