package repository

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/salon-agenda/internal/db"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedClient(t *testing.T, db *gorm.DB, name string) models.Client {
	t.Helper()

	c := models.Client{Name: name, Phone: "8888-0000"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func seedAppointment(t *testing.T, db *gorm.DB, ap models.Appointment) models.Appointment {
	t.Helper()

	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	if err := db.Omit("Client").Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return ap
}
