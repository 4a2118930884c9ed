package get_restaurant_hours

import (
	"context"

	"github.com/booktable/reservation-service/internal/service/restaurants/models"
)

type RestaurantService interface {
	GetHours(ctx context.Context, restaurantID int64) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
