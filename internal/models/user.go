package models

import "time"

type User struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash        string     `gorm:"not null" json:"-"`
	Username            string     `json:"username"`
	ProfilePicture      string     `json:"profilePicture"`
	JoinDate            time.Time  `gorm:"not null" json:"joinDate"`
	Points              int        `gorm:"not null;default:0" json:"points"`
	CurrentIslandTheme  int        `gorm:"not null;default:0" json:"currentIslandTheme"`
	LastPointsAddedDate *time.Time `gorm:"type:date" json:"-"`
	CreatedAt           time.Time  `gorm:"not null" json:"-"`
}
