// Package moderation runs the abuse-report lifecycle: filing with duplicate
// prevention, admin status transitions, and listing.
//
// A report moves pending -> resolved or pending -> rejected and never leaves
// a terminal state. Re-applying the current terminal status is treated as an
// idempotent success; any other rewrite of a closed report is refused.
package moderation

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/auth"
	"github.com/Inteegrus-Research/SP-tenderscope/authz"
	"github.com/Inteegrus-Research/SP-tenderscope/models"
)

var (
	ErrTenderNotFound  = errors.New("moderation: tender not found")
	ErrReportNotFound  = errors.New("moderation: report not found")
	ErrEmptyReason     = errors.New("moderation: reason is required")
	ErrDuplicateReport = errors.New("moderation: tender already reported by this user")
	ErrInvalidStatus   = errors.New("moderation: invalid status")
	ErrReportClosed    = errors.New("moderation: report already closed")
)

// ReportDetail is a report joined with reporter name and tender title for
// display. Read-side convenience, not a separate entity.
type ReportDetail struct {
	models.Report
	UserName    string `json:"userName"`
	TenderTitle string `json:"tenderTitle"`
}

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// File creates a pending report by reporter against tenderID.
//
// The existence check and insert run in one transaction, and the composite
// unique index on (tender_id, user_id) is the enforcement point for
// duplicates: of two concurrent filings exactly one row persists and the
// loser observes ErrDuplicateReport.
func (s *Service) File(ctx context.Context, reporter auth.Identity, tenderID uint, reason string) (*ReportDetail, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}

	var report models.Report
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tender models.Tender
		if err := tx.First(&tender, tenderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenderNotFound
			}
			return err
		}

		// Fast path for the common repeat submission; the unique index
		// still backs the concurrent case.
		var existing models.Report
		if err := tx.Where("tender_id = ? AND user_id = ?", tenderID, reporter.ID).
			First(&existing).Error; err == nil {
			return ErrDuplicateReport
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		report = models.Report{
			TenderID: tenderID,
			UserID:   reporter.ID,
			Reason:   reason,
			Status:   models.ReportPending,
		}
		if err := tx.Create(&report).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateReport
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, report.ID)
}

// Transition sets a pending report to resolved or rejected. Admin only.
func (s *Service) Transition(ctx context.Context, actor auth.Identity, reportID uint, status models.ReportStatus) (*ReportDetail, error) {
	if err := authz.AuthorizeAdmin(actor); err != nil {
		return nil, err
	}

	switch status {
	case models.ReportResolved, models.ReportRejected:
	case models.ReportPending:
		return nil, ErrInvalidStatus
	default:
		return nil, ErrInvalidStatus
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var report models.Report
		if err := tx.First(&report, reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReportNotFound
			}
			return err
		}

		switch report.Status {
		case models.ReportPending:
			// forward transition
		case status:
			// idempotent re-apply of the same terminal state
			return nil
		default:
			return ErrReportClosed
		}

		return tx.Model(&report).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, reportID)
}

// ListForReporter returns the reporter's own reports, newest first, joined
// with the tender title.
func (s *Service) ListForReporter(ctx context.Context, reporterID uint) ([]ReportDetail, error) {
	var reports []ReportDetail
	err := s.DB.WithContext(ctx).Model(&models.Report{}).
		Select("reports.*, tenders.title as tender_title").
		Joins("JOIN tenders ON reports.tender_id = tenders.id").
		Where("reports.user_id = ?", reporterID).
		Order("reports.created_at DESC").
		Find(&reports).Error
	return reports, err
}

// ListAll returns every report joined with reporter name and tender title.
func (s *Service) ListAll(ctx context.Context) ([]ReportDetail, error) {
	var reports []ReportDetail
	err := s.DB.WithContext(ctx).Model(&models.Report{}).
		Select("reports.*, users.name as user_name, tenders.title as tender_title").
		Joins("JOIN users ON reports.user_id = users.id").
		Joins("JOIN tenders ON reports.tender_id = tenders.id").
		Order("reports.created_at DESC").
		Find(&reports).Error
	return reports, err
}

// Find returns the report for (tenderID, reporterID), or ErrReportNotFound.
func (s *Service) Find(ctx context.Context, tenderID, reporterID uint) (*models.Report, error) {
	var report models.Report
	err := s.DB.WithContext(ctx).
		Where("tender_id = ? AND user_id = ?", tenderID, reporterID).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *Service) detail(ctx context.Context, reportID uint) (*ReportDetail, error) {
	var detail ReportDetail
	err := s.DB.WithContext(ctx).Model(&models.Report{}).
		Select("reports.*, users.name as user_name, tenders.title as tender_title").
		Joins("JOIN users ON reports.user_id = users.id").
		Joins("JOIN tenders ON reports.tender_id = tenders.id").
		Where("reports.id = ?", reportID).
		First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Drivers without error translation surface the constraint name raw.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "duplicate key value")
}
