package get_available_slots

import (
	"time"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

// generateDaySlots генерирует времена посадки на день с шагом
// SlotIntervalMinutes. Последний слот начинается не позже, чем за
// DiningDurationMinutes до закрытия: посадка должна успеть завершиться.
func generateDaySlots(opening, closing types.TimeString) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := opening

	for {
		end, err := current.AddMinutes(domain.DiningDurationMinutes)
		if err != nil {
			// Посадка уходит за полночь - день закончился
			break
		}
		if end.IsAfter(closing) {
			break
		}

		slots = append(slots, current)

		next, err := current.AddMinutes(domain.SlotIntervalMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots, nil
}

// filterPastSlots убирает слоты, которые уже прошли, если запрошенная
// дата - сегодня. Для будущих дат возвращает все слоты как есть.
func filterPastSlots(slots []types.TimeString, date types.DateString, now time.Time) []types.TimeString {
	if date != types.NewDateString(now) {
		return slots
	}

	current := types.NewTimeString(now)
	future := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(current) {
			future = append(future, slot)
		}
	}
	return future
}

// countFreeTables считает столы, свободные на слоте. Стол занят, если
// у него есть активное бронирование, чья посадка пересекается с посадкой
// слота: интервалы [slot, slot+90) и [booking, booking+90) накладываются.
// Граничные посадки (одна заканчивается ровно там, где начинается другая)
// пересечением не считаются.
func countFreeTables(slot types.TimeString, tables []*domain.Table, bookings []*domain.Booking) int {
	slotEnd, err := slot.AddMinutes(domain.DiningDurationMinutes)
	if err != nil {
		return 0
	}

	free := 0
	for _, table := range tables {
		if !tableBooked(table.ID, slot, slotEnd, bookings) {
			free++
		}
	}
	return free
}

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
