package domain

import "github.com/booktable/reservation-service/pkg/types"

// TimeSlot represents one discrete reservation start time offered by a
// restaurant for a given date and party size
type TimeSlot struct {
	Time            types.TimeString
	AvailableTables int
}

// IsAvailable returns true if at least one table is free at this time
func (s *TimeSlot) IsAvailable() bool {
	return s.AvailableTables > 0
}
