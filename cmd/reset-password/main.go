package main

import (
	"flag"
	"log"

	"go-storefront/internal/config"
	"go-storefront/internal/model"
	"go-storefront/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// Maintenance tool: reset a user's password by email.
func main() {
	cfg := config.Load()

	email := flag.String("email", cfg.AdminEmail, "email of the account to reset")
	password := flag.String("password", "", "new password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("Usage: reset-password -email <email> -password <new password>")
	}
	if len(*password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	db := database.Connect(cfg.DSN())

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("User %s not found in database: %v", *email, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
