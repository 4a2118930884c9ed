package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
	bookingRepo "github.com/booktable/reservation-service/internal/infra/storage/booking"
	restaurantRepo "github.com/booktable/reservation-service/internal/infra/storage/restaurant"
	"github.com/booktable/reservation-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - гость видит только свои бронирования,
// менеджер ресторана и админ видят любые бронирования своего ресторана
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, role string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkBookingAccess(ctx, booking, userID, role); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetByReference получает бронирование по буквенно-цифровому коду.
// Код вручается гостю при создании брони, доступ по нему не требует
// совпадения user_id - это и есть способ показать бронь на стойке.
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRestaurantBookings получает бронирования ресторана с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно менеджеру ресторана и админу
func (s *Service) GetRestaurantBookings(ctx context.Context, req *models.GetRestaurantBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRestaurantBookings: fetching bookings for restaurant=%d, user=%d", req.RestaurantID, req.UserID)

	if err := s.checkRestaurantAccess(ctx, req.RestaurantID, req.UserID, req.Role); err != nil {
		s.logger.Warn("GetRestaurantBookings: access denied for user=%d to restaurant=%d", req.UserID, req.RestaurantID)
		return nil, err
	}

	// Диапазон дат должен быть согласован
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("GetRestaurantBookings: invalid date range %s..%s", *req.StartDate, *req.EndDate)
		return nil, fmt.Errorf("%w: end_date before start_date", ErrInvalidDateRange)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRestaurantBookings: invalid filter for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRestaurantBookings: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRestaurantBookings: successfully fetched %d bookings for restaurant=%d", len(bookings), req.RestaurantID)
	return models.FromDomainBookingList(bookings), nil
}

// CancelBooking отменяет подтвержденное бронирование
// Гость может отменить только свое бронирование, менеджер и админ - любое
func (s *Service) CancelBooking(ctx context.Context, id int64, userID int64, role string) error {
	s.logger.Info("CancelBooking: cancelling booking id=%d by user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CancelBooking: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("CancelBooking: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, userID, role); err != nil {
		s.logger.Warn("CancelBooking: access denied for user=%d to booking id=%d", userID, id)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("CancelBooking: booking id=%d in status=%s cannot be cancelled", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			// Статус ушел между чтением и отменой
			s.logger.Warn("CancelBooking: booking id=%d lost cancellable status concurrently", id)
			return ErrCannotCancel
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("CancelBooking: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelBooking: successfully cancelled booking id=%d", id)
	return nil
}

// checkBookingAccess проверяет доступ пользователя к бронированию.
// Владелец брони имеет доступ всегда; роль staff дает доступ менеджеру
// ресторана этой брони; роль admin - без ограничений.
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, userID int64, role string) error {
	if booking.UserID == userID {
		return nil
	}
	return s.checkRestaurantAccess(ctx, booking.RestaurantID, userID, role)
}

// checkRestaurantAccess проверяет права управления рестораном
func (s *Service) checkRestaurantAccess(ctx context.Context, restaurantID int64, userID int64, role string) error {
	if role == domain.RoleAdmin {
		return nil
	}
	if role != domain.RoleStaff {
		return ErrAccessDenied
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return ErrRestaurantNotFound
		}
		return fmt.Errorf("%w: checkRestaurantAccess - repository error: %v", ErrInternal, err)
	}

	if restaurant.ManagerID != userID {
		return ErrAccessDenied
	}

	return nil
}
