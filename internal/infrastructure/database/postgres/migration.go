// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&catalog.Product{},
		&catalog.DeliveryOption{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// SeedInitialData fills the catalog tables from the built-in seed set
// when they are empty. Existing rows are left alone so a curated
// catalog survives restarts.
func (m *Migration) SeedInitialData() error {
	var productCount int64
	if err := m.db.Model(&catalog.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if productCount == 0 {
		log.Println("🌱 Seeding product catalog...")
		products := catalog.SeedProducts()
		if err := m.db.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	var optionCount int64
	if err := m.db.Model(&catalog.DeliveryOption{}).Count(&optionCount).Error; err != nil {
		return fmt.Errorf("failed to count delivery options: %w", err)
	}

	if optionCount == 0 {
		log.Println("🌱 Seeding delivery options...")
		options := catalog.SeedDeliveryOptions()
		if err := m.db.Create(&options).Error; err != nil {
			return fmt.Errorf("failed to seed delivery options: %w", err)
		}
	}

	return nil
}
