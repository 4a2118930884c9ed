package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
	bookingRepo "github.com/booktable/reservation-service/internal/infra/storage/booking"
	restaurantRepo "github.com/booktable/reservation-service/internal/infra/storage/restaurant"
	"github.com/booktable/reservation-service/internal/schedule/lifecycle"
)

// maxTransitionAttempts попыток применить переход при конкурентных
// изменениях статуса
const maxTransitionAttempts = 2

// UseCase use case для смены статуса бронирования с проверкой жизненного цикла
type UseCase struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
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
		logger:         logger,
	}
}

// Execute выполняет use case смены статуса.
//
// Переход проверяется по таблице жизненного цикла, затем применяется
// compare-and-set: запись меняется только из прочитанного статуса.
// Если статус ушел из-под нас, бронирование перечитывается и переход
// проверяется заново из нового статуса - ровно один повтор, дальше
// возвращается конфликт.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%d -> %s by user=%d role=%s",
		req.BookingID, req.Status, req.UserID, req.Role)

	target, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		uc.logger.Warn("TransitionBooking: invalid status=%q", req.Status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("TransitionBooking: booking id=%d not found", req.BookingID)
				return nil, ErrBookingNotFound
			}
			uc.logger.Error("TransitionBooking: repository error for booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		actor, err := uc.resolveActor(ctx, booking, req.UserID, req.Role)
		if err != nil {
			uc.logger.Warn("TransitionBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
			return nil, err
		}

		if err := lifecycle.RequestTransition(booking.Status, target, actor); err != nil {
			uc.logger.Warn("TransitionBooking: %s -> %s rejected for booking id=%d: %v",
				booking.Status, target, req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		err = uc.bookingRepo.UpdateStatusFrom(ctx, req.BookingID, booking.Status, target)
		if err == nil {
			uc.logger.Info("TransitionBooking: booking id=%d is now %s", req.BookingID, target)
			booking.Status = target
			return fromDomain(booking), nil
		}

		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			// Конкурентный переход: перечитываем и пробуем из нового статуса
			uc.logger.Warn("TransitionBooking: concurrent status change for booking id=%d, attempt=%d",
				req.BookingID, attempt+1)
			continue
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}

		uc.logger.Error("TransitionBooking: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Warn("TransitionBooking: giving up on booking id=%d after concurrent changes", req.BookingID)
	return nil, ErrTransitionConflict
}

// resolveActor определяет роль инициатора относительно бронирования.
// Менеджер ресторана брони и админ действуют как персонал, владелец
// брони - как гость. Остальным доступ запрещен.
func (uc *UseCase) resolveActor(ctx context.Context, booking *domain.Booking, userID int64, role string) (lifecycle.Actor, error) {
	if role == domain.RoleAdmin {
		return lifecycle.ActorStaff, nil
	}

	if role == domain.RoleStaff {
		restaurant, err := uc.restaurantRepo.GetByID(ctx, booking.RestaurantID)
		if err != nil {
			if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
				return "", ErrAccessDenied
			}
			return "", fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
		}
		if restaurant.ManagerID == userID {
			return lifecycle.ActorStaff, nil
		}
	}

	if booking.UserID == userID {
		return lifecycle.ActorCustomer, nil
	}

	return "", ErrAccessDenied
}
