package get_restaurant

import (
	"context"

	"github.com/booktable/reservation-service/internal/service/restaurants/models"
)

type RestaurantsService interface {
	GetByID(ctx context.Context, id int64, userID int64, role string) (*models.RestaurantResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
