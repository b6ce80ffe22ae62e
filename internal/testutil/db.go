package testutil

import (
	"testing"

	"go_assettag/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens an isolated in-memory database with the full schema applied.
// TranslateError is on, matching production, so unique-constraint violations
// surface as gorm.ErrDuplicatedKey.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Category{},
		&model.Employee{},
		&model.ServerAccount{},
		&model.Asset{},
		&model.AssetCode{},
		&model.BatchTag{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// SeedRefs creates a company and category pair for asset tests
func SeedRefs(t *testing.T, db *gorm.DB) (model.Company, model.Category) {
	t.Helper()

	company := model.Company{Name: "Acme", Code: "ACME"}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("failed to seed company: %v", err)
	}

	category := model.Category{Name: "Laptops", Slug: "laptops"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	return company, category
}
