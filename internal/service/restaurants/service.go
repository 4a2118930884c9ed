package restaurants

import (
	"context"
	"errors"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
	restaurantRepo "github.com/booktable/reservation-service/internal/infra/storage/restaurant"
	"github.com/booktable/reservation-service/internal/service/restaurants/models"
	"github.com/booktable/reservation-service/pkg/types"
)

// Service сервис для работы с ресторанами и их расписанием
type Service struct {
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса ресторанов
func NewService(
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetByID получает ресторан по ID.
// Неодобренные рестораны видят только их менеджер и админ.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, role string) (*models.RestaurantResponse, error) {
	s.logger.Info("GetByID: fetching restaurant id=%d", id)

	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetByID: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetByID: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !restaurant.IsApproved() && !s.canManage(restaurant, userID, role) {
		// Скрываем существование неодобренного ресторана
		s.logger.Warn("GetByID: restaurant id=%d is not approved, hiding from user=%d", id, userID)
		return nil, ErrRestaurantNotFound
	}

	return models.FromDomainRestaurant(restaurant), nil
}

// GetPending получает рестораны, ожидающие модерации. Только для админа.
func (s *Service) GetPending(ctx context.Context, role string) (*models.RestaurantListResponse, error) {
	if role != domain.RoleAdmin {
		return nil, ErrAccessDenied
	}

	restaurants, err := s.restaurantRepo.GetPending(ctx)
	if err != nil {
		s.logger.Error("GetPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPending: fetched %d pending restaurants", len(restaurants))
	return models.FromDomainRestaurantList(restaurants), nil
}

// GetHours получает недельное расписание ресторана
func (s *Service) GetHours(ctx context.Context, restaurantID int64) (*models.HoursResponse, error) {
	s.logger.Info("GetHours: fetching hours for restaurant=%d", restaurantID)

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("%w: GetHours - repository error: %v", ErrInternal, err)
	}

	hours, err := s.restaurantRepo.GetHours(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetHours: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHours(restaurantID, hours), nil
}

// UpdateHours полностью заменяет недельное расписание ресторана.
// Доступно менеджеру ресторана и админу. Замена атомарна.
func (s *Service) UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("UpdateHours: updating hours for restaurant=%d by user=%d", req.RestaurantID, req.UserID)

	restaurant, err := s.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("%w: UpdateHours - repository error: %v", ErrInternal, err)
	}

	if !s.canManage(restaurant, req.UserID, req.Role) {
		s.logger.Warn("UpdateHours: access denied for user=%d to restaurant=%d", req.UserID, req.RestaurantID)
		return nil, ErrAccessDenied
	}

	hours, err := s.validateHours(req.Hours)
	if err != nil {
		s.logger.Warn("UpdateHours: invalid hours for restaurant=%d: %v", req.RestaurantID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.restaurantRepo.ReplaceHours(txCtx, req.RestaurantID, hours)
	})
	if err != nil {
		s.logger.Error("UpdateHours: transaction error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: UpdateHours - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateHours: successfully updated %d hour entries for restaurant=%d", len(hours), req.RestaurantID)
	return models.FromDomainHours(req.RestaurantID, hours), nil
}

// UpdateApprovalStatus меняет статус модерации ресторана. Только для админа.
func (s *Service) UpdateApprovalStatus(ctx context.Context, req *models.UpdateApprovalRequest) error {
	s.logger.Info("UpdateApprovalStatus: setting restaurant=%d to status=%s by user=%d", req.RestaurantID, req.Status, req.UserID)

	if req.Role != domain.RoleAdmin {
		s.logger.Warn("UpdateApprovalStatus: access denied for user=%d role=%s", req.UserID, req.Role)
		return ErrAccessDenied
	}

	status, ok := domain.ParseApprovalStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateApprovalStatus: invalid status=%s", req.Status)
		return fmt.Errorf("%w: %q", ErrInvalidApprovalStatus, req.Status)
	}

	if err := s.restaurantRepo.UpdateApprovalStatus(ctx, req.RestaurantID, status); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return ErrRestaurantNotFound
		}
		s.logger.Error("UpdateApprovalStatus: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return fmt.Errorf("%w: UpdateApprovalStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateApprovalStatus: restaurant=%d is now %s", req.RestaurantID, status)
	return nil
}

// validateHours проверяет и конвертирует недельное расписание.
// Требования: день в диапазоне 0..6, не более одной записи на день,
// открытие строго раньше закрытия, времена в формате HH:MM или HH:MM:SS.
func (s *Service) validateHours(entries []models.HoursEntry) ([]*domain.OperatingHours, error) {
	seen := make(map[int]bool, len(entries))
	hours := make([]*domain.OperatingHours, 0, len(entries))

	for _, e := range entries {
		if e.Day < 0 || e.Day > 6 {
			return nil, fmt.Errorf("%w: day %d out of range", ErrInvalidHours, e.Day)
		}
		if seen[e.Day] {
			return nil, fmt.Errorf("%w: duplicate day %d", ErrInvalidHours, e.Day)
		}
		seen[e.Day] = true

		opening, err := types.NewTimeStringFromString(e.OpeningTime)
		if err != nil {
			return nil, fmt.Errorf("%w: opening time: %v", ErrInvalidHours, err)
		}
		closing, err := types.NewTimeStringFromString(e.ClosingTime)
		if err != nil {
			return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidHours, err)
		}
		if !opening.IsBefore(closing) {
			return nil, fmt.Errorf("%w: day %d opens at %s but closes at %s", ErrInvalidHours, e.Day, opening, closing)
		}

		hours = append(hours, &domain.OperatingHours{
			Day:         e.Day,
			OpeningTime: opening,
			ClosingTime: closing,
		})
	}

	return hours, nil
}

func (s *Service) canManage(restaurant *domain.Restaurant, userID int64, role string) bool {
	if role == domain.RoleAdmin {
		return true
	}
	return role == domain.RoleStaff && restaurant.ManagerID == userID
}
