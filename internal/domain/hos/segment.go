package hos

import (
	"math"

	"github.com/haulpath/tripplan/internal/domain/shared"
)

// SegmentType classifies a planned activity interval
type SegmentType string

const (
	// SegmentDrive counts against the 11-hour driving limit and the 14-hour window
	SegmentDrive SegmentType = "drive"
	// SegmentOnDuty counts only against the 14-hour window
	SegmentOnDuty SegmentType = "on_duty"
	// SegmentOffDuty counts against neither and resets consecutive driving
	SegmentOffDuty SegmentType = "off_duty"
)

// IsValid reports whether the segment type is one of the known values
func (t SegmentType) IsValid() bool {
	switch t {
	case SegmentDrive, SegmentOnDuty, SegmentOffDuty:
		return true
	}
	return false
}

// PlannedSegment is one intended activity interval fed to the scheduler
type PlannedSegment struct {
	Type          SegmentType `json:"type"`
	DurationHours float64     `json:"duration_hours"`
	Location      string      `json:"location"`
}

// NewPlannedSegment creates a planned segment with validation
func NewPlannedSegment(segmentType SegmentType, durationHours float64, location string) (PlannedSegment, error) {
	seg := PlannedSegment{Type: segmentType, DurationHours: durationHours, Location: location}
	if err := seg.Validate(); err != nil {
		return PlannedSegment{}, err
	}
	return seg, nil
}

// Validate checks the segment type and duration
func (s PlannedSegment) Validate() error {
	if !s.Type.IsValid() {
		return shared.NewScheduleError("unknown segment type: " + string(s.Type))
	}
	if math.IsNaN(s.DurationHours) || math.IsInf(s.DurationHours, 0) {
		return shared.NewScheduleError("segment duration must be finite")
	}
	if s.DurationHours < 0 {
		return shared.NewScheduleError("segment duration must not be negative")
	}
	return nil
}
