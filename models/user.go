package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  *string   `json:"-"` // bcrypt hash, nil for OAuth-only accounts
	IsAdmin   bool      `gorm:"not null;default:false" json:"isAdmin"`
	Provider  string    `gorm:"type:varchar(20);default:'email'" json:"-"`
	GoogleID  *string   `gorm:"uniqueIndex" json:"-"`
	Avatar    string    `json:"avatar,omitempty"`
	Tenders   []Tender  `json:"tenders,omitempty" gorm:"foreignKey:UserID"`
	Reports   []Report  `json:"reports,omitempty" gorm:"foreignKey:UserID"`
}
