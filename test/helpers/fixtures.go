package helpers

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/haulpath/tripplan/internal/adapters/persistence"
	"github.com/haulpath/tripplan/internal/domain/driver"
)

// CreateTestDriver inserts a driver and returns the persisted entity
func CreateTestDriver(t *testing.T, db *gorm.DB, name, homeTimezone string) *driver.Driver {
	t.Helper()

	repo := persistence.NewGormDriverRepository(db)
	d := driver.NewDriver(name, homeTimezone)
	if err := repo.Add(context.Background(), d); err != nil {
		t.Fatalf("failed to create test driver: %v", err)
	}

	return d
}

// CreateTestRecord inserts a daily record for a driver
func CreateTestRecord(t *testing.T, db *gorm.DB, record *driver.DailyRecord) {
	t.Helper()

	repo := persistence.NewGormRecordRepository(db)
	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
}
