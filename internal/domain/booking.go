package domain

import (
	"time"

	"github.com/booktable/reservation-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking represents a restaurant table reservation
type Booking struct {
	ID           int64
	UserID       int64
	RestaurantID int64
	TableID      int64

	// Date and Time are civil values in the restaurant's local calendar,
	// never UTC-shifted. Their canonical string forms are the only keys
	// used for day bucketing and grid matching.
	Date types.DateString
	Time types.TimeString

	PartySize int
	Status    BookingStatus

	// Contact information, set at creation and never mutated afterwards
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	SpecialRequests *string

	// Denormalized for history and wire responses
	RestaurantName string
	TableNumber    string

	BookingReference string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsTerminal returns true if the booking has left the active lifecycle
// (completed, cancelled or no_show). Staff may still revert completed and
// no_show bookings; cancelled is final.
func (b *Booking) IsTerminal() bool {
	return b.Status != StatusConfirmed
}

// CanBeCancelled returns true if the booking is still cancellable
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// Occupies returns true if the booking blocks its table for availability
// calculations. Only confirmed bookings hold a table.
func (b *Booking) Occupies() bool {
	return b.Status == StatusConfirmed
}

// RestaurantBookingsFilter фильтр для выборки бронирований ресторана
type RestaurantBookingsFilter struct {
	RestaurantID    int64             // Обязательный параметр
	StartDate       *types.DateString // Начало периода (опционально)
	EndDate         *types.DateString // Конец периода (опционально)
	Status          *BookingStatus    // Фильтр по статусу (опционально)
	IncludeInactive bool              // Включать ли отмененные и no-show бронирования
}
