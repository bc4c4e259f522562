package bootstrap

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bettyia/clinic-scheduler/internal/config"
	"github.com/bettyia/clinic-scheduler/internal/models"
)

// SeedAdmin creates the configured admin user on first startup. Keyed by
// username, so running it again is a no-op.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seeded admin user %q", cfg.AdminUsername)
	return nil
}
