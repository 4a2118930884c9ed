package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
	restaurantRepo "github.com/booktable/reservation-service/internal/infra/storage/restaurant"
)

// UseCase use case для создания бронирования со свободным столом
type UseCase struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Подбор стола и вставка идут в одной сериализуемой транзакции:
// два конкурентных запроса на один слот не смогут получить один стол.
// Стол выбирается первым свободным в порядке "вместимость ASC, номер ASC",
// чтобы большие столы оставались доступными для больших компаний.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, restaurant=%d, date=%s, time=%s, party=%d",
		req.UserID, req.RestaurantID, req.Date, req.Time, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDateTime(req.Date, req.Time, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateBooking: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}
	if !restaurant.IsApproved() {
		uc.logger.Warn("CreateBooking: restaurant id=%d is not approved", req.RestaurantID)
		return nil, ErrRestaurantNotFound
	}

	// 3. Часы работы и попадание посадки в окно
	weekday, err := req.Date.Weekday()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	hours, err := uc.restaurantRepo.GetHoursForDay(ctx, req.RestaurantID, domain.MondayBasedWeekday(weekday))
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrHoursNotFound) {
			uc.logger.Warn("CreateBooking: restaurant id=%d is closed on %s", req.RestaurantID, req.Date)
			return nil, ErrRestaurantClosed
		}
		uc.logger.Error("CreateBooking: failed to get hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}
	if err := validateWithinHours(req.Time, hours); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 4. Уникальный код бронирования (вне транзакции - коды глобальны)
	reference, err := uc.uniqueReference(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to generate reference: %v", err)
		return nil, fmt.Errorf("%w: failed to generate booking reference: %v", ErrInternal, err)
	}

	// 5. Подбор стола и вставка в сериализуемой транзакции
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		tables, err := uc.restaurantRepo.GetTablesForPartySize(txCtx, req.RestaurantID, req.PartySize)
		if err != nil {
			return fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
		}
		if len(tables) == 0 {
			return ErrNoTablesAvailable
		}

		status := domain.StatusConfirmed
		filter := domain.RestaurantBookingsFilter{
			RestaurantID: req.RestaurantID,
			StartDate:    &req.Date,
			EndDate:      &req.Date,
			Status:       &status,
		}
		bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		table := pickTable(req.Time, tables, bookings)
		if table == nil {
			return ErrNoTablesAvailable
		}

		booking := &domain.Booking{
			UserID:           req.UserID,
			RestaurantID:     req.RestaurantID,
			TableID:          table.ID,
			Date:             req.Date,
			Time:             req.Time,
			PartySize:        req.PartySize,
			Status:           domain.StatusConfirmed,
			ContactName:      req.ContactName,
			ContactEmail:     req.ContactEmail,
			ContactPhone:     req.ContactPhone,
			SpecialRequests:  req.SpecialRequests,
			RestaurantName:   restaurant.Name,
			TableNumber:      table.TableNumber,
			BookingReference: reference,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoTablesAvailable) {
			uc.logger.Warn("CreateBooking: no tables for restaurant=%d, date=%s, time=%s, party=%d",
				req.RestaurantID, req.Date, req.Time, req.PartySize)
			return nil, ErrNoTablesAvailable
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d reference=%s table=%s",
		created.ID, created.BookingReference, created.TableNumber)

	return fromDomain(created), nil
}

