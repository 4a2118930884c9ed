package create_booking

import (
	"github.com/booktable/reservation-service/pkg/types"

	uc "github.com/booktable/reservation-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID    int64   `json:"restaurant_id"`
	Date            string  `json:"date"` // "2025-05-08"
	Time            string  `json:"time"` // "19:00" или "19:00:00"
	PartySize       int     `json:"party_size"`
	ContactName     string  `json:"contact_name"`
	ContactEmail    string  `json:"contact_email"`
	ContactPhone    string  `json:"contact_phone"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*uc.Request, error) {
	date, err := types.ParseDateString(r.Date)
	if err != nil {
		return nil, err
	}
	bookingTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &uc.Request{
		UserID:          userID,
		RestaurantID:    r.RestaurantID,
		Date:            date,
		Time:            bookingTime,
		PartySize:       r.PartySize,
		ContactName:     r.ContactName,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		SpecialRequests: r.SpecialRequests,
	}, nil
}
