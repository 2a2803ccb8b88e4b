package helpers

import (
	"context"
	"sort"
	"sync"

	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

// MockDriverRepository simulates driver storage for testing
type MockDriverRepository struct {
	mu sync.RWMutex

	drivers map[uint]*driver.Driver
	nextID  uint
	findErr error
	addErr  error
}

// NewMockDriverRepository creates a new mock driver repository
func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{
		drivers: make(map[uint]*driver.Driver),
		nextID:  1,
	}
}

// SetFindError configures FindByID and FindAll to fail
func (m *MockDriverRepository) SetFindError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findErr = err
}

// SetAddError configures Add to fail
func (m *MockDriverRepository) SetAddError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addErr = err
}

// Add stores a driver, assigning an ID when missing
func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return m.addErr
	}
	if d.ID == 0 {
		d.ID = m.nextID
		m.nextID++
	}
	m.drivers[d.ID] = d
	return nil
}

// FindByID returns the stored driver or a not-found error
func (m *MockDriverRepository) FindByID(ctx context.Context, id uint) (*driver.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	d, ok := m.drivers[id]
	if !ok {
		return nil, shared.NewDriverNotFoundError(id)
	}
	return d, nil
}

// FindAll returns all stored drivers ordered by name
func (m *MockDriverRepository) FindAll(ctx context.Context) ([]*driver.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	all := make([]*driver.Driver, 0, len(m.drivers))
	for _, d := range m.drivers {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// MockRecordRepository simulates daily record storage for testing
type MockRecordRepository struct {
	mu sync.RWMutex

	records   map[uint]map[string]*driver.DailyRecord // driverID -> date -> record
	upsertErr error
	Upserted  []*driver.DailyRecord
}

// NewMockRecordRepository creates a new mock record repository
func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{
		records: make(map[uint]map[string]*driver.DailyRecord),
	}
}

// SetUpsertError configures Upsert to fail
func (m *MockRecordRepository) SetUpsertError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertErr = err
}

// Seed stores a record directly, bypassing the Upserted call log
func (m *MockRecordRepository) Seed(record *driver.DailyRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(record)
}

// Upsert inserts or replaces the record for (DriverID, Date)
func (m *MockRecordRepository) Upsert(ctx context.Context, record *driver.DailyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.store(record)
	m.Upserted = append(m.Upserted, record)
	return nil
}

// FindByDriver returns the driver's records newest date first
func (m *MockRecordRepository) FindByDriver(ctx context.Context, driverID uint) ([]*driver.DailyRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(driverID, "", ""), nil
}

// FindByDriverInRange returns records with from <= date <= to, newest first
func (m *MockRecordRepository) FindByDriverInRange(ctx context.Context, driverID uint, from, to string) ([]*driver.DailyRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(driverID, from, to), nil
}

// Reset clears all stored records and the call log
func (m *MockRecordRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[uint]map[string]*driver.DailyRecord)
	m.Upserted = nil
	m.upsertErr = nil
}

func (m *MockRecordRepository) store(record *driver.DailyRecord) {
	byDate, ok := m.records[record.DriverID]
	if !ok {
		byDate = make(map[string]*driver.DailyRecord)
		m.records[record.DriverID] = byDate
	}
	byDate[record.Date] = record
}

func (m *MockRecordRepository) collect(driverID uint, from, to string) []*driver.DailyRecord {
	matched := []*driver.DailyRecord{}
	for date, record := range m.records[driverID] {
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		matched = append(matched, record)
	}
	// ISO dates sort lexicographically
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })
	return matched
}
