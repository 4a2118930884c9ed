// Package analytics собирает сводные показатели бронирований для
// панели менеджера ресторана.
package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
	restaurantRepo "github.com/booktable/reservation-service/internal/infra/storage/restaurant"
)

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByRestaurantAndStatus(ctx context.Context, restaurantID int64) (map[domain.BookingStatus]int, error)
	GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// StatsResponse сводка бронирований ресторана: распределение по статусам,
// по дням недели (0 = понедельник) и средний размер компании
type StatsResponse struct {
	RestaurantID     int64   `json:"restaurant_id"`
	Total            int     `json:"total"`
	Confirmed        int     `json:"confirmed"`
	Completed        int     `json:"completed"`
	Cancelled        int     `json:"cancelled"`
	NoShow           int     `json:"no_show"`
	ByWeekday        [7]int  `json:"by_weekday"`
	AveragePartySize float64 `json:"average_party_size"`
}

// Service сервис аналитики бронирований
type Service struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(bookingRepo BookingRepository, restaurantRepo RestaurantRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// GetRestaurantStats возвращает сводку бронирований ресторана по статусам.
// Доступно менеджеру ресторана и админу.
func (s *Service) GetRestaurantStats(ctx context.Context, restaurantID int64, userID int64, role string) (*StatsResponse, error) {
	s.logger.Info("GetRestaurantStats: fetching stats for restaurant=%d by user=%d", restaurantID, userID)

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetRestaurantStats: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantStats - repository error: %v", ErrInternal, err)
	}

	if role != domain.RoleAdmin && !(role == domain.RoleStaff && restaurant.ManagerID == userID) {
		s.logger.Warn("GetRestaurantStats: access denied for user=%d to restaurant=%d", userID, restaurantID)
		return nil, ErrAccessDenied
	}

	counts, err := s.bookingRepo.CountByRestaurantAndStatus(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetRestaurantStats: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantStats - repository error: %v", ErrInternal, err)
	}

	stats := &StatsResponse{
		RestaurantID: restaurantID,
		Confirmed:    counts[domain.StatusConfirmed],
		Completed:    counts[domain.StatusCompleted],
		Cancelled:    counts[domain.StatusCancelled],
		NoShow:       counts[domain.StatusNoShow],
	}
	stats.Total = stats.Confirmed + stats.Completed + stats.Cancelled + stats.NoShow

	bookings, err := s.bookingRepo.GetByRestaurantWithFilter(ctx, domain.RestaurantBookingsFilter{
		RestaurantID:    restaurantID,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("GetRestaurantStats: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantStats - repository error: %v", ErrInternal, err)
	}

	partyTotal := 0
	for _, b := range bookings {
		wd, wdErr := b.Date.Weekday()
		if wdErr != nil {
			s.logger.Warn("GetRestaurantStats: skipping booking=%d with bad date %q: %v", b.ID, b.Date, wdErr)
			continue
		}
		stats.ByWeekday[(int(wd)+6)%7]++
		partyTotal += b.PartySize
	}
	if len(bookings) > 0 {
		stats.AveragePartySize = float64(partyTotal) / float64(len(bookings))
	}

	return stats, nil
}
