package config

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/models"
)

// Seed creates the bootstrap admin account and, on an empty database, a few
// sample tenders so the map view is not blank on first run.
func Seed(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@tenderscope.com"
	}

	var admin models.User
	err := db.Where("email = ?", adminEmail).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashStr := string(hash)
		admin = models.User{
			Name:     "Admin User",
			Email:    adminEmail,
			Password: &hashStr,
			IsAdmin:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Admin user created")
	} else if err != nil {
		return err
	}

	var tenderCount int64
	if err := db.Model(&models.Tender{}).Count(&tenderCount).Error; err != nil {
		return err
	}
	if tenderCount > 0 {
		return nil
	}

	var owner models.User
	err = db.Where("email = ?", "user@tenderscope.com").First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashStr := string(hash)
		owner = models.User{
			Name:     "Regular User",
			Email:    "user@tenderscope.com",
			Password: &hashStr,
		}
		if err := db.Create(&owner).Error; err != nil {
			return err
		}
		log.Println("Regular user created")
	} else if err != nil {
		return err
	}

	samples := []models.Tender{
		{
			Title:       "Office Building Construction",
			Description: "Seeking contractors for a new 5-story office building in downtown area.",
			Lat:         40.7128,
			Lng:         -74.0060,
			UserID:      owner.ID,
		},
		{
			Title:       "Road Maintenance Project",
			Description: "Maintenance and repair of 5km stretch of highway including resurfacing and drainage improvements.",
			Lat:         40.7282,
			Lng:         -73.9942,
			UserID:      owner.ID,
		},
		{
			Title:       "Public Park Renovation",
			Description: "Complete renovation of central park including new playground equipment, landscaping, and irrigation systems.",
			Lat:         40.7411,
			Lng:         -74.0018,
			UserID:      owner.ID,
		},
	}
	if err := db.Create(&samples).Error; err != nil {
		return err
	}
	log.Println("Sample tenders created")

	return nil
}
