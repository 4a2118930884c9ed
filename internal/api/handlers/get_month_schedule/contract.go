package get_month_schedule

import (
	"context"

	uc "github.com/booktable/reservation-service/internal/usecase/get_month_schedule"
)

type GetMonthScheduleUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
