// models/invite.go
package models

import "time"

type LeagueInviteCode struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"uniqueIndex;not null;size:36" json:"code"`
	LeagueID  uint       `gorm:"not null;index" json:"league_id"`
	League    *League    `gorm:"foreignKey:LeagueID" json:"league,omitempty"`
	Role      Role       `gorm:"not null;default:'player';size:20" json:"role"`
	ExpiresAt *time.Time `json:"expires_at"`
	MaxUses   *int       `json:"max_uses"`

	CreatedAt time.Time `json:"created_at"`
}

type InviteCodeUsage struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	InviteCodeID uint              `gorm:"not null;index" json:"invite_code_id"`
	InviteCode   *LeagueInviteCode `gorm:"foreignKey:InviteCodeID" json:"invite_code,omitempty"`
	UserID       uint              `gorm:"not null;index" json:"user_id"`
	User         *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	UsedAt       time.Time         `json:"used_at"`
}

func (LeagueInviteCode) TableName() string {
	return "league_invite_codes"
}

func (InviteCodeUsage) TableName() string {
	return "invite_code_usages"
}
