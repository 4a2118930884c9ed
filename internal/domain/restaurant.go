package domain

import (
	"time"

	"github.com/booktable/reservation-service/pkg/types"
)

// ApprovalStatus represents the listing moderation state of a restaurant
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ParseApprovalStatus validates a raw approval status string
func ParseApprovalStatus(s string) (ApprovalStatus, bool) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(s), true
	default:
		return "", false
	}
}

// Restaurant represents a restaurant listing
type Restaurant struct {
	ID          int64
	Name        string
	Description string
	Address     string
	City        string
	State       string
	ZipCode     string
	Phone       string
	Email       string
	Website     *string
	CostRating  int // 1..4, "$".."$$$$"

	ManagerID      int64
	ApprovalStatus ApprovalStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsApproved returns true if the listing is visible to customers
func (r *Restaurant) IsApproved() bool {
	return r.ApprovalStatus == ApprovalApproved
}

// Table represents a bookable table of a restaurant
type Table struct {
	ID           int64
	RestaurantID int64
	TableNumber  string
	Capacity     int
}

// Fits returns true if the table can seat the party
func (t *Table) Fits(partySize int) bool {
	return t.Capacity >= partySize
}

// OperatingHours represents the opening hours of a restaurant for one
// weekday. Day is zero-based with Monday = 0, matching the Monday-first
// calendar grid.
type OperatingHours struct {
	ID           int64
	RestaurantID int64
	Day          int // 0 = Monday .. 6 = Sunday
	OpeningTime  types.TimeString
	ClosingTime  types.TimeString
}

// MondayBasedWeekday converts a time.Weekday (Sunday = 0) to the
// Monday-first day index used by OperatingHours.
func MondayBasedWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
