package get_month_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/booktable/reservation-service/internal/domain"
	restaurantRepo "github.com/booktable/reservation-service/internal/infra/storage/restaurant"
	"github.com/booktable/reservation-service/internal/schedule/calendar"
	"github.com/booktable/reservation-service/internal/schedule/dayindex"
	"github.com/booktable/reservation-service/pkg/types"
)

// UseCase use case месячного расписания бронирований ресторана
type UseCase struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute строит месячную сетку ресторана с бронированиями по дням.
// Сетка покрывает 42 ячейки, включая хвосты соседних месяцев, поэтому
// выборка бронирований идет по диапазону от первой до последней ячейки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthSchedule: restaurant=%d, %04d-%02d, user=%d",
		req.RestaurantID, req.Year, req.Month, req.UserID)

	if req.RestaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range", ErrInvalidInput, req.Month)
	}
	if req.Year < 1 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetMonthSchedule: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetMonthSchedule: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	if req.Role != domain.RoleAdmin && !(req.Role == domain.RoleStaff && restaurant.ManagerID == req.UserID) {
		uc.logger.Warn("GetMonthSchedule: access denied for user=%d to restaurant=%d", req.UserID, req.RestaurantID)
		return nil, ErrAccessDenied
	}

	today := types.NewDateString(uc.timeProvider.Now())
	grid := calendar.BuildMonthGrid(req.Year, time.Month(req.Month), today)

	// Диапазон сетки: от первой до последней ячейки включительно
	startDate := grid[0].Date
	endDate := grid[len(grid)-1].Date
	filter := domain.RestaurantBookingsFilter{
		RestaurantID:    req.RestaurantID,
		StartDate:       &startDate,
		EndDate:         &endDate,
		IncludeInactive: true, // Менеджер видит и отмененные посадки
	}

	bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetMonthSchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	flat := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		flat = append(flat, *b)
	}
	index := dayindex.Build(flat)

	days := make([]Day, 0, len(grid))
	for _, cell := range grid {
		dayBookings := index.ForDay(cell.Date)
		entries := make([]DayBooking, 0, len(dayBookings))
		for _, b := range dayBookings {
			entries = append(entries, toDayBooking(b))
		}
		days = append(days, Day{
			Date:           cell.Date,
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday:        cell.IsToday,
			Bookings:       entries,
		})
	}

	uc.logger.Info("GetMonthSchedule: %d bookings across %d cells for restaurant=%d",
		index.Total(), len(days), req.RestaurantID)

	return &Response{
		RestaurantID: req.RestaurantID,
		Year:         req.Year,
		Month:        req.Month,
		Days:         days,
		Total:        index.Total(),
	}, nil
}
