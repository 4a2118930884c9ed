package get_pending_restaurants

import (
	"context"

	"github.com/booktable/reservation-service/internal/service/restaurants/models"
)

type RestaurantsService interface {
	GetPending(ctx context.Context, role string) (*models.RestaurantListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
