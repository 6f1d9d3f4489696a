package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"pfbe/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: go run ./cmd/create_profile <name> <email> <password>")
		os.Exit(2)
	}
	name := os.Args[1]
	email := os.Args[2]
	password := os.Args[3]

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	// check existing
	var existing models.Profile
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("profile %s already exists (id=%s)\n", email, existing.ID)
		os.Exit(0)
	}

	hpw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	profile := models.Profile{Name: name, Email: email, HashedPassword: hpw}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatalf("failed to create profile: %v", err)
	}
	fmt.Printf("created profile %s id=%s\n", email, profile.ID)
}
