package cancel_booking

import (
	"context"
)

type BookingService interface {
	CancelBooking(ctx context.Context, id int64, userID int64, role string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
