package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"oficinas/internal/config"
	"oficinas/internal/db"
	"oficinas/internal/model"
	"oficinas/internal/repository"
)

const (
	adminName     = "Administrador"
	adminEmail    = "admin@tedi.org"
	adminPassword = "admin123"
)

func sampleWorkshops() []model.Workshop {
	base := time.Now().AddDate(0, 0, 7)
	end1 := base.Add(2 * time.Hour)
	end2 := base.AddDate(0, 0, 7).Add(3 * time.Hour)
	return []model.Workshop{
		{
			Title:       "Introdução à Horta Comunitária",
			Description: "Primeiros passos para montar e manter uma horta coletiva.",
			Instructor:  "Maria Souza",
			Category:    "Sustentabilidade",
			Capacity:    20,
			StartsAt:    base,
			EndsAt:      &end1,
		},
		{
			Title:       "Oficina de Teatro",
			Description: "Jogos teatrais e expressão corporal para iniciantes.",
			Instructor:  "João Lima",
			Category:    "Cultura",
			Capacity:    15,
			StartsAt:    base.AddDate(0, 0, 7),
			EndsAt:      &end2,
		},
	}
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Workshop{},
		&model.Enrollment{},
		&model.Volunteer{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	workshopRepo := repository.NewWorkshopRepository(gormDB)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, err := seedWorkshops(ctx, gormDB, workshopRepo)
	if err != nil {
		log.Fatalf("Failed to seed workshops: %v", err)
	}

	log.Printf("Seed completed successfully! New workshops created: %d", created)
}

// seedAdmin creates the admin account once; reruns are no-ops.
func seedAdmin(ctx context.Context, repo repository.UserRepository) error {
	if _, err := repo.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("Admin user %s already present, skipping", adminEmail)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin user created: %s", adminEmail)
	return nil
}

// seedWorkshops inserts the sample workshops missing by title.
func seedWorkshops(ctx context.Context, gormDB *gorm.DB, repo repository.WorkshopRepository) (int, error) {
	created := 0
	for _, workshop := range sampleWorkshops() {
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Workshop{}).
			Where("titulo = ?", workshop.Title).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		w := workshop
		if err := repo.Create(ctx, &w); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
