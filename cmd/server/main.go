package main

import (
	"log"
	"net/http"
	"os"

	_ "oficinas/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"oficinas/internal/auth"
	"oficinas/internal/cache"
	"oficinas/internal/config"
	"oficinas/internal/db"
	"oficinas/internal/handler"
	"oficinas/internal/model"
	"oficinas/internal/repository"
	"oficinas/internal/router"
	"oficinas/internal/service"
)

// @title Oficinas API
// @version 1.0
// @description Workshop registration platform: users, workshops, enrollments, and volunteers.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
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
			&model.Enrollment{},
			&model.Volunteer{},
			&model.Workshop{},
			&model.User{},
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
		&model.User{},
		&model.Workshop{},
		&model.Enrollment{},
		&model.Volunteer{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	workshopRepo := repository.NewWorkshopRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	volunteerRepo := repository.NewVolunteerRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	workshopService := service.NewWorkshopService(workshopRepo, cacheClient)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	volunteerService := service.NewVolunteerService(volunteerRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	workshopHandler := handler.NewWorkshopHandler(workshopService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	volunteerHandler := handler.NewVolunteerHandler(volunteerService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		workshopHandler,
		enrollmentHandler,
		volunteerHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("Servidor rodando na porta %s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
