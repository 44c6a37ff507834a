package models

import (
	"time"
)

// ReportStatus is the closed set of moderation states a report moves through.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
	ReportRejected ReportStatus = "rejected"
)

// ParseReportStatus maps a raw string to a known status.
func ParseReportStatus(s string) (ReportStatus, bool) {
	switch ReportStatus(s) {
	case ReportPending:
		return ReportPending, true
	case ReportResolved:
		return ReportResolved, true
	case ReportRejected:
		return ReportRejected, true
	default:
		return "", false
	}
}

// Terminal reports true for states that end the moderation lifecycle.
func (s ReportStatus) Terminal() bool {
	switch s {
	case ReportResolved, ReportRejected:
		return true
	case ReportPending:
		return false
	default:
		return false
	}
}

type Report struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	TenderID  uint         `gorm:"not null;uniqueIndex:idx_reports_tender_reporter" json:"tenderId"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_reports_tender_reporter" json:"userId"`
	Reason    string       `gorm:"not null;type:text" json:"reason"`
	Status    ReportStatus `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	Tender    Tender       `json:"-" gorm:"foreignKey:TenderID"`
	User      User         `json:"-" gorm:"foreignKey:UserID"`
}
