package models

import (
	"time"

	"github.com/lib/pq"
)

type Tender struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null;type:text" json:"description"`
	Lat         float64        `gorm:"not null;type:decimal(10,8)" json:"lat"`
	Lng         float64        `gorm:"not null;type:decimal(11,8)" json:"lng"`
	Attachments pq.StringArray `gorm:"type:text[]" json:"attachments,omitempty"`
	UserID      uint           `gorm:"not null;index" json:"userId"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
	Reports     []Report       `json:"-" gorm:"foreignKey:TenderID;constraint:OnDelete:CASCADE"`
}
