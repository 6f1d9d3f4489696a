package main

import (
	"os"
	"strings"

	"pfbe/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal().Msg("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect postgres database")
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others.
		// Profiles first so the profile_id FKs can be applied safely.
		if err := db.AutoMigrate(&models.Profile{}); err != nil {
			log.Warn().Err(err).Msg("migration warning (profiles)")
		}
		if err := db.AutoMigrate(&models.Project{}); err != nil {
			log.Warn().Err(err).Msg("migration warning (projects)")
		}
		if err := db.AutoMigrate(&models.Certificate{}); err != nil {
			log.Warn().Err(err).Msg("migration warning (certificates)")
		}
		if err := db.AutoMigrate(&models.Experience{}); err != nil {
			log.Warn().Err(err).Msg("migration warning (experiences)")
		}
		if err := db.AutoMigrate(&models.Interest{}); err != nil {
			log.Warn().Err(err).Msg("migration warning (interests)")
		}
		if err := db.AutoMigrate(&models.Service{}); err != nil {
			log.Warn().Err(err).Msg("migration warning (services)")
		}
		if err := db.AutoMigrate(&models.RefreshToken{}); err != nil {
			log.Warn().Err(err).Msg("migration warning (refresh_tokens)")
		}
	}
	seedDB()
}

// seedDB creates the owner profile from OWNER_EMAIL / OWNER_PASSWORD when the
// profiles table is still empty. Skipped entirely when the vars are unset so a
// fresh instance can also be bootstrapped through POST /api/profile.
func seedDB() {
	email := os.Getenv("OWNER_EMAIL")
	password := os.Getenv("OWNER_PASSWORD")
	if email != "" && password != "" {
		var count int64
		db.Model(&models.Profile{}).Count(&count)
		if count == 0 {
			name := os.Getenv("OWNER_NAME")
			if name == "" {
				name = "Owner"
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				log.Warn().Err(err).Msg("failed to hash owner password, skipping seed")
			} else {
				owner := models.Profile{Name: name, Email: email, HashedPassword: hashed}
				if err := db.Create(&owner).Error; err != nil {
					log.Warn().Err(err).Msg("failed to seed owner profile")
				} else {
					log.Info().Str("email", email).Msg("seeded owner profile")
				}
			}
		}
	}
	// Ensure upload directory exists
	ensureUploadBase()
}

// ensureUploadBase creates the base uploads directory.
func ensureUploadBase() {
	base := uploadBaseDir()
	if err := os.MkdirAll(base, 0755); err != nil {
		log.Warn().Err(err).Str("dir", base).Msg("failed to create upload base dir")
	}
}

// uploadBaseDir returns the base directory for local uploads (configurable via UPLOAD_BASE env)
func uploadBaseDir() string {
	if v := os.Getenv("UPLOAD_BASE"); v != "" {
		return v
	}
	return "uploads"
}
