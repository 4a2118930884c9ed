package create_booking

import (
	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64
	RestaurantID    int64
	Date            types.DateString
	Time            types.TimeString
	PartySize       int
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	SpecialRequests *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64   `json:"id"`
	RestaurantID     int64   `json:"restaurant_id"`
	RestaurantName   string  `json:"restaurant_name"`
	TableID          int64   `json:"table_id"`
	TableNumber      string  `json:"table_number"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	PartySize        int     `json:"party_size"`
	Status           string  `json:"status"`
	BookingReference string  `json:"booking_reference"`
	SpecialRequests  *string `json:"special_requests,omitempty"`
}

// fromDomain собирает response из созданного бронирования
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:               b.ID,
		RestaurantID:     b.RestaurantID,
		RestaurantName:   b.RestaurantName,
		TableID:          b.TableID,
		TableNumber:      b.TableNumber,
		Date:             b.Date.String(),
		Time:             b.Time.WithSeconds(),
		PartySize:        b.PartySize,
		Status:           string(b.Status),
		BookingReference: b.BookingReference,
		SpecialRequests:  b.SpecialRequests,
	}
}
