package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

// GormRecordRepository implements driver.RecordRepository using GORM
type GormRecordRepository struct {
	db *gorm.DB
}

// NewGormRecordRepository creates a new GORM daily-record repository
func NewGormRecordRepository(db *gorm.DB) *GormRecordRepository {
	return &GormRecordRepository{db: db}
}

// Upsert writes the record for its (driver, date) key. An existing row for
// the same day keeps its ID and created_at; totals and entries are replaced.
func (r *GormRecordRepository) Upsert(ctx context.Context, record *driver.DailyRecord) error {
	model, err := recordToModel(record)
	if err != nil {
		return shared.NewPersistenceError("encode daily record", err)
	}
	if model.ID == "" {
		model.ID = uuid.New().String()
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "driver_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"driving_hours", "on_duty_hours", "off_duty_hours", "entries", "updated_at",
			}),
		}).
		Create(model)
	if result.Error != nil {
		return shared.NewPersistenceError("upsert daily record", result.Error)
	}

	return nil
}

// FindByDriver retrieves all records for a driver, newest date first
func (r *GormRecordRepository) FindByDriver(ctx context.Context, driverID uint) ([]*driver.DailyRecord, error) {
	var models []DailyRecordModel
	result := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, shared.NewPersistenceError("list daily records", result.Error)
	}

	return modelsToRecords(models)
}

// FindByDriverInRange retrieves records with from <= date <= to, newest first
func (r *GormRecordRepository) FindByDriverInRange(ctx context.Context, driverID uint, from, to string) ([]*driver.DailyRecord, error) {
	var models []DailyRecordModel
	result := r.db.WithContext(ctx).
		Where("driver_id = ? AND date >= ? AND date <= ?", driverID, from, to).
		Order("date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, shared.NewPersistenceError("list daily records in range", result.Error)
	}

	return modelsToRecords(models)
}

func modelsToRecords(models []DailyRecordModel) ([]*driver.DailyRecord, error) {
	records := make([]*driver.DailyRecord, 0, len(models))
	for i := range models {
		record, err := modelToRecord(&models[i])
		if err != nil {
			return nil, shared.NewPersistenceError("decode daily record", err)
		}
		records = append(records, record)
	}
	return records, nil
}

func modelToRecord(model *DailyRecordModel) (*driver.DailyRecord, error) {
	var entries []hos.DutyEntry
	if model.Entries != "" {
		if err := json.Unmarshal([]byte(model.Entries), &entries); err != nil {
			return nil, err
		}
	}

	return &driver.DailyRecord{
		ID:           model.ID,
		DriverID:     model.DriverID,
		Date:         model.Date,
		DrivingHours: model.DrivingHours,
		OnDutyHours:  model.OnDutyHours,
		OffDutyHours: model.OffDutyHours,
		Entries:      entries,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func recordToModel(record *driver.DailyRecord) (*DailyRecordModel, error) {
	entries := record.Entries
	if entries == nil {
		entries = []hos.DutyEntry{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	return &DailyRecordModel{
		ID:           record.ID,
		DriverID:     record.DriverID,
		Date:         record.Date,
		DrivingHours: record.DrivingHours,
		OnDutyHours:  record.OnDutyHours,
		OffDutyHours: record.OffDutyHours,
		Entries:      string(entriesJSON),
	}, nil
}
