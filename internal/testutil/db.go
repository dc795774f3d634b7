// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fittrack/internal/models/db_models"
)

// NewDB returns a private in-memory SQLite database with the schema applied.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&db_models.Account{}, &db_models.Workout{}, &db_models.Exercise{}, &db_models.Goal{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateAccount inserts an account directly, bypassing password hashing.
func CreateAccount(t testing.TB, db *gorm.DB, email string) *db_models.Account {
	t.Helper()

	account := &db_models.Account{Name: "Test " + email, Email: email, PasswordHash: "x"}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}
