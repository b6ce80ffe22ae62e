package db

import (
	"fmt"

	"go_assettag/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate runs database migrations for all models
func Migrate(db *gorm.DB) error {
	logrus.Info("starting database migration")

	models := []interface{}{
		&model.User{},
		&model.Company{},
		&model.Category{},
		&model.Employee{},
		&model.ServerAccount{},
		&model.Asset{},
		&model.AssetCode{},
		&model.BatchTag{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.Infof("database migration completed (%d tables)", len(models))
	return nil
}
