package driver

import "time"

// Driver represents a property-carrying driver whose duty time is tracked.
// HomeTimezone names the IANA zone used to partition trips into local days.
type Driver struct {
	ID           uint
	Name         string
	HomeTimezone string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDriver creates a new driver
func NewDriver(name, homeTimezone string) *Driver {
	if homeTimezone == "" {
		homeTimezone = "UTC"
	}
	return &Driver{
		Name:         name,
		HomeTimezone: homeTimezone,
	}
}

// Location resolves the driver's home zone. Unknown or empty zone names fall
// back to UTC rather than failing the plan.
func (d *Driver) Location() *time.Location {
	if d == nil || d.HomeTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(d.HomeTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
