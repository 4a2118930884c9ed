package facade

import (
	"context"
	"time"

	"github.com/booktable/reservation-service/internal/integrations/bookingapi"
	"github.com/booktable/reservation-service/pkg/types"
)

// BookingAPI is the slice of the reservation service consumed by the facade.
type BookingAPI interface {
	GetBookings(ctx context.Context, restaurantID int64, startDate, endDate types.DateString) (*bookingapi.BookingList, error)
	GetAvailability(ctx context.Context, restaurantID int64, date types.DateString, partySize int, requestedTime *types.TimeString, toleranceMinutes *int) (*bookingapi.Availability, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, status string) (*bookingapi.StatusUpdateResult, error)
}

// TimeProvider supplies the current moment; tests substitute a fixed clock.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
