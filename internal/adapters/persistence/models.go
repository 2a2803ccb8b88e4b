package persistence

import (
	"time"
)

// DriverModel represents the drivers table
type DriverModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;not null;index"`
	HomeTimezone string    `gorm:"column:home_timezone;not null;default:'UTC'"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (DriverModel) TableName() string {
	return "drivers"
}

// DailyRecordModel represents the daily_records table
// One row per (driver, date); re-planning the same day replaces the row.
type DailyRecordModel struct {
	ID           string       `gorm:"column:id;primaryKey;not null"`
	DriverID     uint         `gorm:"column:driver_id;not null;uniqueIndex:idx_driver_date"`
	Driver       *DriverModel `gorm:"foreignKey:DriverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Date         string       `gorm:"column:date;not null;uniqueIndex:idx_driver_date"` // YYYY-MM-DD
	DrivingHours float64      `gorm:"column:driving_hours;not null"`
	OnDutyHours  float64      `gorm:"column:on_duty_hours;not null"`
	OffDutyHours float64      `gorm:"column:off_duty_hours;not null"`
	Entries      string       `gorm:"column:entries;type:text;not null"` // JSON array as text
	CreatedAt    time.Time    `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time    `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (DailyRecordModel) TableName() string {
	return "daily_records"
}
