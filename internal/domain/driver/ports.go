package driver

import "context"

// Repository defines driver persistence operations
type Repository interface {
	FindByID(ctx context.Context, id uint) (*Driver, error)

	// FindAll returns every driver ordered by name.
	FindAll(ctx context.Context) ([]*Driver, error)

	Add(ctx context.Context, driver *Driver) error
}

// RecordRepository defines daily-record persistence operations
type RecordRepository interface {
	// Upsert writes the record for its (driver, date) key, replacing any
	// existing row for the same day.
	Upsert(ctx context.Context, record *DailyRecord) error

	// FindByDriver returns all records for a driver, newest date first.
	FindByDriver(ctx context.Context, driverID uint) ([]*DailyRecord, error)

	// FindByDriverInRange returns records with from ≤ date ≤ to (inclusive,
	// ISO date strings), newest date first.
	FindByDriverInRange(ctx context.Context, driverID uint, from, to string) ([]*DailyRecord, error)
}
