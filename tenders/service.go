// Package tenders owns tender CRUD. Writes pass through the ownership guard
// and deletion removes the tender's reports in the same transaction.
package tenders

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/auth"
	"github.com/Inteegrus-Research/SP-tenderscope/authz"
	"github.com/Inteegrus-Research/SP-tenderscope/models"
)

// ErrNotFound means the tender id did not resolve.
var ErrNotFound = errors.New("tenders: tender not found")

// Detail is a tender joined with its owner's display name.
type Detail struct {
	models.Tender
	UserName string `json:"userName"`
}

// Input carries the caller-editable tender fields.
type Input struct {
	Title       string
	Description string
	Lat         float64
	Lng         float64
	Attachments []string
}

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Create inserts a tender owned by the actor. Ownership never changes after
// this point.
func (s *Service) Create(ctx context.Context, actor auth.Identity, in Input) (*Detail, error) {
	tender := models.Tender{
		Title:       in.Title,
		Description: in.Description,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Attachments: pq.StringArray(in.Attachments),
		UserID:      actor.ID,
	}
	if err := s.DB.WithContext(ctx).Create(&tender).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, tender.ID)
}

// Get returns one tender with the owner name joined. Public read.
func (s *Service) Get(ctx context.Context, id uint) (*Detail, error) {
	var detail Detail
	err := s.DB.WithContext(ctx).Model(&models.Tender{}).
		Select("tenders.*, users.name as user_name").
		Joins("JOIN users ON tenders.user_id = users.id").
		Where("tenders.id = ?", id).
		First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// List returns all tenders, newest first. Public read.
func (s *Service) List(ctx context.Context) ([]Detail, error) {
	var details []Detail
	err := s.DB.WithContext(ctx).Model(&models.Tender{}).
		Select("tenders.*, users.name as user_name").
		Joins("JOIN users ON tenders.user_id = users.id").
		Order("tenders.created_at DESC").
		Find(&details).Error
	return details, err
}

// ListForOwner returns the actor's own tenders, newest first.
func (s *Service) ListForOwner(ctx context.Context, ownerID uint) ([]Detail, error) {
	var details []Detail
	err := s.DB.WithContext(ctx).Model(&models.Tender{}).
		Select("tenders.*, users.name as user_name").
		Joins("JOIN users ON tenders.user_id = users.id").
		Where("tenders.user_id = ?", ownerID).
		Order("tenders.created_at DESC").
		Find(&details).Error
	return details, err
}

// Update rewrites the mutable fields. Owner or admin only; ownership is read
// from the current row, never cached.
func (s *Service) Update(ctx context.Context, actor auth.Identity, id uint, in Input) (*Detail, error) {
	var tender models.Tender
	if err := s.DB.WithContext(ctx).First(&tender, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := authz.Authorize(actor, tender.UserID, authz.ActionMutate); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"lat":         in.Lat,
		"lng":         in.Lng,
	}
	if in.Attachments != nil {
		updates["attachments"] = pq.StringArray(in.Attachments)
	}
	if err := s.DB.WithContext(ctx).Model(&tender).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the tender and every report filed against it as a single
// transaction, reports first. Owner or admin only.
func (s *Service) Delete(ctx context.Context, actor auth.Identity, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tender models.Tender
		if err := tx.First(&tender, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := authz.Authorize(actor, tender.UserID, authz.ActionDelete); err != nil {
			return err
		}

		if err := tx.Where("tender_id = ?", id).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tender).Error
	})
}
