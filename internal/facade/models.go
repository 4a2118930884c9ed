package facade

import (
	"fmt"
	"time"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/internal/integrations/bookingapi"
	"github.com/booktable/reservation-service/pkg/types"
)

// MonthView is an immutable snapshot of one restaurant month: a 42-cell
// Monday-first grid with the restaurant's bookings bucketed per day.
// A new snapshot replaces the previous one; cells are never patched in place.
type MonthView struct {
	RestaurantID int64
	Year         int
	Month        time.Month
	Days         []DayCell
	Total        int
	FetchedAt    time.Time
}

// DayCell is one grid cell of a MonthView.
type DayCell struct {
	Date           types.DateString
	IsCurrentMonth bool
	IsToday        bool
	Bookings       []domain.Booking
}

func toDomainBooking(wire *bookingapi.Booking) (domain.Booking, error) {
	date, err := types.ParseDateString(wire.Date)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking %d: %v", wire.ID, err)
	}
	clock, err := types.NewTimeStringFromString(wire.Time)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking %d: %v", wire.ID, err)
	}

	b := domain.Booking{
		ID:               wire.ID,
		UserID:           wire.UserID,
		RestaurantID:     wire.RestaurantID,
		RestaurantName:   wire.RestaurantName,
		TableID:          wire.TableID,
		TableNumber:      wire.TableNumber,
		Date:             date,
		Time:             clock,
		PartySize:        wire.PartySize,
		Status:           domain.BookingStatus(wire.Status),
		ContactName:      wire.ContactName,
		ContactEmail:     wire.ContactEmail,
		ContactPhone:     wire.ContactPhone,
		SpecialRequests:  wire.SpecialRequests,
		BookingReference: wire.BookingReference,
	}
	if createdAt, err := time.Parse(time.RFC3339, wire.CreatedAt); err == nil {
		b.CreatedAt = createdAt
	}
	if updatedAt, err := time.Parse(time.RFC3339, wire.UpdatedAt); err == nil {
		b.UpdatedAt = updatedAt
	}

	return b, nil
}

func toDomainSlots(slots []bookingapi.Slot) ([]domain.TimeSlot, error) {
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		clock, err := types.NewTimeStringFromString(s.Time)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.TimeSlot{
			Time:            clock,
			AvailableTables: s.AvailableTables,
		})
	}
	return out, nil
}
