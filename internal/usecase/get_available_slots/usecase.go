package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
	restaurantRepo "github.com/booktable/reservation-service/internal/infra/storage/restaurant"
	"github.com/booktable/reservation-service/internal/schedule/slotmatch"
)

// UseCase use case для получения доступных слотов посадки
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, restaurant=%d, date=%s, party=%d",
		req.UserID, req.RestaurantID, req.Date, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetAvailableSlots: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}
	if !restaurant.IsApproved() {
		uc.logger.Warn("GetAvailableSlots: restaurant id=%d is not approved", req.RestaurantID)
		return nil, ErrRestaurantNotFound
	}

	// 3. Часы работы на день недели. Отсутствие записи - закрыт.
	weekday, err := req.Date.Weekday()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	hours, err := uc.restaurantRepo.GetHoursForDay(ctx, req.RestaurantID, domain.MondayBasedWeekday(weekday))
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: restaurant id=%d is closed on %s", req.RestaurantID, req.Date)
			return nil, ErrRestaurantClosed
		}
		uc.logger.Error("GetAvailableSlots: failed to get hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	// 4. Генерируем слоты в пределах часов работы
	daySlots, err := generateDaySlots(hours.OpeningTime, hours.ClosingTime)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}
	daySlots = filterPastSlots(daySlots, req.Date, now)

	// 5. Столы, вмещающие компанию
	tables, err := uc.restaurantRepo.GetTablesForPartySize(ctx, req.RestaurantID, req.PartySize)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	// 6. Активные бронирования на дату
	status := domain.StatusConfirmed
	filter := domain.RestaurantBookingsFilter{
		RestaurantID: req.RestaurantID,
		StartDate:    &req.Date,
		EndDate:      &req.Date,
		Status:       &status,
	}
	bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Доступность по каждому слоту
	offered := make([]domain.TimeSlot, 0, len(daySlots))
	for _, slot := range daySlots {
		free := countFreeTables(slot, tables, bookings)
		if free > 0 {
			offered = append(offered, domain.TimeSlot{Time: slot, AvailableTables: free})
		}
	}

	// 8. Фильтр по желаемому времени с допуском
	tolerance := domain.DefaultMatchToleranceMinutes
	if req.Tolerance != nil {
		tolerance = *req.Tolerance
	}
	matched, err := slotmatch.Match(offered, req.Time, tolerance)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: slot matching failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	slots := make([]Slot, 0, len(matched))
	for _, s := range matched {
		slots = append(slots, Slot{
			Time:            s.Time.WithSeconds(),
			AvailableTables: s.AvailableTables,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for restaurant=%d, date=%s, party=%d",
		len(slots), req.RestaurantID, req.Date, req.PartySize)

	return &Response{
		Date:         req.Date,
		RestaurantID: req.RestaurantID,
		PartySize:    req.PartySize,
		Slots:        slots,
	}, nil
}
