package mysql

import (
	"testing"
	"time"

	"bark-backend/internal/domain/customer"
	"bark-backend/internal/domain/insurance"
	"bark-backend/internal/domain/job"
	"bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/status"
	"bark-backend/internal/domain/vehicle"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type statusSQLite struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	Category  string    `gorm:"type:text;column:category"` // ← no enum
	Name      string    `gorm:"column:status_name"`
	ColorCode string    `gorm:"column:color_code"`
	Order     int       `gorm:"column:order"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (statusSQLite) TableName() string { return "statuses" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe schema.
// One connection only: every pooled connection to ":memory:" would be a fresh database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// IMPORTANT: statuses goes through the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(
		&statusSQLite{},
		&customer.Customer{},
		&vehicle.Vehicle{},
		&insurance.Company{},
		&job.Job{},
		&job.History{},
		&repairjob.RepairJob{},
		&repairjob.EstimateItem{},
		&repairjob.StatusLog{},
		&repairjob.NumberSequence{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

// seedCatalogue loads the default statuses through the shadow struct.
func seedCatalogue(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, s := range status.DefaultCatalogue() {
		row := statusSQLite{ID: s.ID, Category: string(s.Category), Name: s.Name, ColorCode: s.ColorCode, Order: s.Order}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed status %d: %v", s.ID, err)
		}
	}
}

func seedCustomer(t *testing.T, db *gorm.DB, name, phone string) *customer.Customer {
	t.Helper()
	c := &customer.Customer{Name: name, PhoneNumber: phone}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func uintPtr(v uint) *uint { return &v }
