package main

import (
	"log"
	"net/http"
	"os"

	_ "policydesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"policydesk/internal/auth"
	"policydesk/internal/cache"
	"policydesk/internal/config"
	"policydesk/internal/db"
	"policydesk/internal/handler"
	"policydesk/internal/inquiry"
	"policydesk/internal/model"
	"policydesk/internal/repository"
	"policydesk/internal/router"
	"policydesk/internal/service"
)

// @title Policy Desk API
// @version 1.0
// @description Insurance agency backend: public product inquiries and stats, token-protected policy records and calendar.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
// @description Opaque admin bearer token issued by /auth/login.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Policy{},
			&model.AdminUser{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.AdminUser{},
		&model.Policy{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	policyRepo := repository.NewPolicyRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	policyService := service.NewPolicyService(policyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	policyHandler := handler.NewPolicyHandler(policyService)
	inquiryHandler := handler.NewInquiryHandler(inquiry.Agent{
		Name:           cfg.AgentName,
		IPCode:         cfg.AgentIPCode,
		WhatsAppNumber: cfg.WhatsAppNumber,
	})
	seedHandler := handler.NewSeedHandler(authService, cfg)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		policyHandler,
		inquiryHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
