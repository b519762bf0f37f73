package config

import (
	"log"

	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminEmployee(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminEmployee seeds a default admin employee
// This is for development/testing only
// In production, create admins through a secure process
func (s *Seeder) seedAdminEmployee() error {
	// Check if an admin already exists
	var count int64
	s.db.Model(&models.Employee{}).Where("role = ?", "Admin").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.Employee{
		EmployeeID:   "ADMIN001",
		MobileNumber: "9999999999",
		Password:     hashedPassword,
		Role:         "Admin",
		Branch:       "Head Office",
		IsActive:     true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded admin employee: %s", admin.EmployeeID)
	return nil
}
