package models

import (
	"errors"
	"time"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"user_id"`
	Status *string `json:"status,omitempty"`
}

// GetRestaurantBookingsRequest запрос на получение бронирований ресторана
type GetRestaurantBookingsRequest struct {
	UserID          int64             `json:"user_id"`
	Role            string            `json:"role"`
	RestaurantID    int64             `json:"restaurant_id"`
	StartDate       *types.DateString `json:"start_date,omitempty"` // Начало периода (опционально)
	EndDate         *types.DateString `json:"end_date,omitempty"`   // Конец периода (опционально)
	Status          *string           `json:"status,omitempty"`     // Фильтр по статусу (опционально)
	IncludeInactive bool              `json:"include_inactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRestaurantBookingsRequest) ToDomainFilter() (domain.RestaurantBookingsFilter, error) {
	filter := domain.RestaurantBookingsFilter{
		RestaurantID:    r.RestaurantID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	RestaurantID     int64   `json:"restaurant_id"`
	RestaurantName   string  `json:"restaurant_name"`
	TableID          int64   `json:"table_id"`
	TableNumber      string  `json:"table_number"`
	Date             string  `json:"date"`  // "2025-05-08"
	Time             string  `json:"time"`  // "19:00:00"
	PartySize        int     `json:"party_size"`
	Status           string  `json:"status"`
	ContactName      string  `json:"contact_name"`
	ContactEmail     string  `json:"contact_email"`
	ContactPhone     string  `json:"contact_phone"`
	SpecialRequests  *string `json:"special_requests,omitempty"`
	BookingReference string  `json:"booking_reference"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		RestaurantID:     b.RestaurantID,
		RestaurantName:   b.RestaurantName,
		TableID:          b.TableID,
		TableNumber:      b.TableNumber,
		Date:             b.Date.String(),
		Time:             b.Time.WithSeconds(),
		PartySize:        b.PartySize,
		Status:           string(b.Status),
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		ContactPhone:     b.ContactPhone,
		SpecialRequests:  b.SpecialRequests,
		BookingReference: b.BookingReference,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromDomainBooking(b))
	}

	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	parsed, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return parsed, nil
}
