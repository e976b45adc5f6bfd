package database

import (
	"catalog-service/internal/model"
	"catalog-service/pkg/config"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the initial administrator account from configuration if
// no account with that username exists yet. No HTTP route creates admins.
func SeedAdmin(conn *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Password == "" {
		// Nothing to seed; the admin is expected to exist already
		return nil
	}

	var existing model.Admin
	err := conn.Where("username = ?", cfg.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := model.Admin{
		Username: cfg.Username,
		Password: string(hashed),
	}
	if err := conn.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	return nil
}
