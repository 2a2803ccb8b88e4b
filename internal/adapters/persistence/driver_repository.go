package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

// GormDriverRepository implements driver.Repository using GORM
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// FindByID retrieves a driver by ID
func (r *GormDriverRepository) FindByID(ctx context.Context, id uint) (*driver.Driver, error) {
	var model DriverModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewDriverNotFoundError(id)
		}
		return nil, shared.NewPersistenceError("find driver", result.Error)
	}

	return modelToDriver(&model), nil
}

// FindAll retrieves all drivers ordered by name
func (r *GormDriverRepository) FindAll(ctx context.Context) ([]*driver.Driver, error) {
	var models []DriverModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, shared.NewPersistenceError("list drivers", result.Error)
	}

	drivers := make([]*driver.Driver, 0, len(models))
	for i := range models {
		drivers = append(drivers, modelToDriver(&models[i]))
	}

	return drivers, nil
}

// Add persists a driver. A zero ID lets the database assign one; the
// assigned ID is written back into the entity.
func (r *GormDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	model := driverToModel(d)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return shared.NewPersistenceError("add driver", result.Error)
	}

	d.ID = model.ID
	d.CreatedAt = model.CreatedAt
	d.UpdatedAt = model.UpdatedAt
	return nil
}

func modelToDriver(model *DriverModel) *driver.Driver {
	return &driver.Driver{
		ID:           model.ID,
		Name:         model.Name,
		HomeTimezone: model.HomeTimezone,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func driverToModel(d *driver.Driver) *DriverModel {
	return &DriverModel{
		ID:           d.ID,
		Name:         d.Name,
		HomeTimezone: d.HomeTimezone,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
