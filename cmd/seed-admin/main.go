package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderlink.backend/internal/config"
	"orderlink.backend/internal/domain/entities"
	domainerrors "orderlink.backend/internal/domain/errors"
	"orderlink.backend/internal/infrastructure/repositories"
	"orderlink.backend/pkg/crypto"
)

// Seeds the initial super admin account. Safe to run repeatedly; an
// existing account is left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	email := strings.ToLower(os.Getenv("SEED_ADMIN_EMAIL"))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}
	fullName := os.Getenv("SEED_ADMIN_NAME")
	if fullName == "" {
		fullName = "Super Admin"
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(db)

	if _, err := userRepo.GetByEmail(ctx, email); err == nil {
		log.Printf("Admin %s already exists, nothing to do", email)
		return
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		log.Fatalf("failed to check existing admin: %v", err)
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         entities.UserRoleSuperAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("Created super admin %s (%s)", email, user.ID)
}
