package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"policydesk/internal/config"
	"policydesk/internal/db"
	"policydesk/internal/model"
	"policydesk/internal/repository"
)

const bcryptCost = 10

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.AdminUser{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	// Single-operator system: seeding always starts from a clean slate.
	if err := userRepo.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear admin users: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	user := &model.AdminUser{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashedPassword),
	}

	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin email: %s", user.Email)
}
