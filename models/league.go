// models/league.go
package models

import "time"

type League struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null;size:100" json:"name"`
	ScoringFormat  string    `gorm:"not null;size:100;default:'standard'" json:"scoring_format"`
	CommissionerID uint      `gorm:"not null" json:"commissioner_id"`
	Commissioner   *User     `gorm:"foreignKey:CommissionerID" json:"commissioner,omitempty"`
	ScheduleID     *uint     `gorm:"index" json:"schedule_id"`
	Schedule       *Schedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	IsActive       bool      `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Members []LeagueMember `gorm:"foreignKey:LeagueID" json:"members,omitempty"`
}

type Role string

const (
	RoleCommissioner Role = "commissioner"
	RolePlayer       Role = "player"
)

// LeagueMember ties a user to a league. A user holds exactly one
// membership per league; picks and scores hang off the membership,
// not the user, so one person can play in several leagues.
type LeagueMember struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	LeagueID uint    `gorm:"not null;index:idx_league_members_league_user,unique" json:"league_id"`
	League   *League `gorm:"foreignKey:LeagueID" json:"league,omitempty"`
	UserID   uint    `gorm:"not null;index:idx_league_members_league_user,unique" json:"user_id"`
	User     *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role     Role    `gorm:"not null;default:'player';size:20" json:"role"`

	JoinedAt time.Time `json:"joined_at"`
}

func (League) TableName() string {
	return "leagues"
}

func (LeagueMember) TableName() string {
	return "league_members"
}
