package models

import (
	"github.com/booktable/reservation-service/internal/domain"
)

// Request модели

// HoursEntry часы работы на один день недели (0 = понедельник)
type HoursEntry struct {
	Day         int    `json:"day"`
	OpeningTime string `json:"opening_time"` // "HH:MM" или "HH:MM:SS"
	ClosingTime string `json:"closing_time"`
}

// UpdateHoursRequest запрос на замену недельного расписания ресторана
type UpdateHoursRequest struct {
	UserID       int64        `json:"user_id"`
	Role         string       `json:"role"`
	RestaurantID int64        `json:"restaurant_id"`
	Hours        []HoursEntry `json:"hours"`
}

// UpdateApprovalRequest запрос на смену статуса модерации
type UpdateApprovalRequest struct {
	UserID       int64  `json:"user_id"`
	Role         string `json:"role"`
	RestaurantID int64  `json:"restaurant_id"`
	Status       string `json:"status"`
}

// Response модели

// RestaurantResponse ответ с данными ресторана
type RestaurantResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	ZipCode        string  `json:"zip_code"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	Website        *string `json:"website,omitempty"`
	CostRating     int     `json:"cost_rating"`
	ApprovalStatus string  `json:"approval_status"`
}

// RestaurantListResponse список ресторанов
type RestaurantListResponse struct {
	Restaurants []*RestaurantResponse `json:"restaurants"`
	Total       int                   `json:"total"`
}

// HoursResponse недельное расписание ресторана
type HoursResponse struct {
	RestaurantID int64        `json:"restaurant_id"`
	Hours        []HoursEntry `json:"hours"`
}

// FromDomainRestaurant конвертирует domain модель в response
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		ZipCode:        r.ZipCode,
		Phone:          r.Phone,
		Email:          r.Email,
		Website:        r.Website,
		CostRating:     r.CostRating,
		ApprovalStatus: string(r.ApprovalStatus),
	}
}

// FromDomainRestaurantList конвертирует список domain моделей в response
func FromDomainRestaurantList(restaurants []*domain.Restaurant) *RestaurantListResponse {
	responses := make([]*RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		responses = append(responses, FromDomainRestaurant(r))
	}

	return &RestaurantListResponse{
		Restaurants: responses,
		Total:       len(responses),
	}
}

// FromDomainHours конвертирует недельное расписание в response
func FromDomainHours(restaurantID int64, hours []*domain.OperatingHours) *HoursResponse {
	entries := make([]HoursEntry, 0, len(hours))
	for _, h := range hours {
		entries = append(entries, HoursEntry{
			Day:         h.Day,
			OpeningTime: h.OpeningTime.WithSeconds(),
			ClosingTime: h.ClosingTime.WithSeconds(),
		})
	}

	return &HoursResponse{
		RestaurantID: restaurantID,
		Hours:        entries,
	}
}
