package restaurants

import (
	"context"

	"github.com/booktable/reservation-service/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	GetByManagerID(ctx context.Context, managerID int64) ([]*domain.Restaurant, error)
	GetPending(ctx context.Context) ([]*domain.Restaurant, error)
	UpdateApprovalStatus(ctx context.Context, id int64, status domain.ApprovalStatus) error
	GetHours(ctx context.Context, restaurantID int64) ([]*domain.OperatingHours, error)
	ReplaceHours(ctx context.Context, restaurantID int64, hours []*domain.OperatingHours) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
