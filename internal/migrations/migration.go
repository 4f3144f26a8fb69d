package migrations

import (
	"log"
	"time"

	"temp_dashboard/internal/config"
	"temp_dashboard/internal/database"
	"temp_dashboard/internal/models"
	"temp_dashboard/internal/repository"
	"temp_dashboard/internal/services"

	"gorm.io/gorm"
)

// RunMigrations migrates the schema and seeds the initial admin account.
func RunMigrations(db *gorm.DB, cfg *config.Config) error {
	log.Println("Running database migrations...")

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	if err := createDefaultAdmin(db, cfg); err != nil {
		log.Printf("Warning: Failed to create default admin: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Minute)

	existing, err := userRepo.GetByEmail(cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Println("Admin user already exists")
		return nil
	}

	log.Println("Creating admin user...")
	_, err = authService.Register(&services.RegisterInput{
		Email:     cfg.AdminEmail,
		Password:  cfg.AdminPassword,
		FirstName: "Admin",
		LastName:  "User",
		Role:      string(models.RoleAdmin),
	})
	if err != nil {
		return err
	}

	log.Printf("Admin user created: %s", cfg.AdminEmail)
	return nil
}
