package get_restaurant_stats

import (
	"context"

	"github.com/booktable/reservation-service/internal/service/analytics"
)

type AnalyticsService interface {
	GetRestaurantStats(ctx context.Context, restaurantID int64, userID int64, role string) (*analytics.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
