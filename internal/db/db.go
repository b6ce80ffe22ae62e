package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var conn *gorm.DB

// InitMySQL opens the MySQL connection. TranslateError is enabled so
// unique-key violations surface as gorm.ErrDuplicatedKey and can be
// mapped to conflict responses instead of generic storage failures.
func InitMySQL(dsn string) error {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	conn = database
	logrus.Info("mysql connected")
	return nil
}

// Get returns the initialized database handle
func Get() *gorm.DB {
	return conn
}

// Close closes the underlying connection pool
func Close() error {
	if conn == nil {
		return nil
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
