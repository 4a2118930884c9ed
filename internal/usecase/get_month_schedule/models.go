package get_month_schedule

import (
	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

// Request модель запроса месячного расписания ресторана
type Request struct {
	UserID       int64
	Role         string
	RestaurantID int64
	Year         int
	Month        int // 1..12
}

// Response месячная сетка: ровно 42 ячейки, неделя с понедельника
type Response struct {
	RestaurantID int64 `json:"restaurant_id"`
	Year         int   `json:"year"`
	Month        int   `json:"month"`
	Days         []Day `json:"days"`
	Total        int   `json:"total_bookings"`
}

// Day одна ячейка сетки с бронированиями дня
type Day struct {
	Date           types.DateString `json:"date"`
	IsCurrentMonth bool             `json:"is_current_month"`
	IsToday        bool             `json:"is_today"`
	Bookings       []DayBooking     `json:"bookings"`
}

// DayBooking краткая запись бронирования для ячейки календаря
type DayBooking struct {
	ID               int64  `json:"id"`
	Time             string `json:"time"` // "19:00:00"
	PartySize        int    `json:"party_size"`
	Status           string `json:"status"`
	TableNumber      string `json:"table_number"`
	ContactName      string `json:"contact_name"`
	BookingReference string `json:"booking_reference"`
}

func toDayBooking(b domain.Booking) DayBooking {
	return DayBooking{
		ID:               b.ID,
		Time:             b.Time.WithSeconds(),
		PartySize:        b.PartySize,
		Status:           string(b.Status),
		TableNumber:      b.TableNumber,
		ContactName:      b.ContactName,
		BookingReference: b.BookingReference,
	}
}
