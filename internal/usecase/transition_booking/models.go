package transition_booking

import (
	"github.com/booktable/reservation-service/internal/domain"
)

// Request модель запроса на смену статуса бронирования
type Request struct {
	UserID    int64
	Role      string
	BookingID int64
	Status    string
}

// Response модель ответа с новым состоянием бронирования
type Response struct {
	ID               int64  `json:"id"`
	Status           string `json:"status"`
	BookingReference string `json:"booking_reference"`
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:               b.ID,
		Status:           string(b.Status),
		BookingReference: b.BookingReference,
	}
}
