package update_approval_status

import (
	"context"

	"github.com/booktable/reservation-service/internal/service/restaurants/models"
)

type RestaurantService interface {
	UpdateApprovalStatus(ctx context.Context, req *models.UpdateApprovalRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
