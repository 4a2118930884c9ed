package create_booking

import (
	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

// pickTable возвращает первый стол без пересекающейся активной посадки.
// Список tables приходит отсортированным по вместимости, поэтому первый
// свободный - самый маленький из подходящих.
func pickTable(slot types.TimeString, tables []*domain.Table, bookings []*domain.Booking) *domain.Table {
	slotEnd, err := slot.AddMinutes(domain.DiningDurationMinutes)
	if err != nil {
		return nil
	}

	for _, table := range tables {
		if !tableBooked(table.ID, slot, slotEnd, bookings) {
			return table
		}
	}
	return nil
}

// tableBooked проверяет пересечение посадки [slotStart, slotEnd) с активными
// бронированиями стола. Граничные посадки пересечением не считаются.
func tableBooked(tableID int64, slotStart, slotEnd types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.TableID != tableID || !booking.Occupies() {
			continue
		}

		bookingEnd, err := booking.Time.AddMinutes(domain.DiningDurationMinutes)
		if err != nil {
			continue
		}

		if booking.Time.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			return true
		}
	}
	return false
}
