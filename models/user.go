// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"uniqueIndex;not null;size:120" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `gorm:"not null;size:40" json:"display_name"`
	FirstName   string `gorm:"not null;size:40" json:"first_name"`
	LastName    string `gorm:"not null;size:40" json:"last_name"`
	AvatarURL   string `gorm:"size:512" json:"avatar_url"`
	IsAdmin     bool   `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	Memberships []LeagueMember `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
}

func (User) TableName() string {
	return "users"
}
