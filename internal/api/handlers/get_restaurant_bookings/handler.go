package get_restaurant_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/booktable/reservation-service/internal/api/handlers"
	"github.com/booktable/reservation-service/internal/api/middleware"
	"github.com/booktable/reservation-service/internal/service/bookings"
	"github.com/booktable/reservation-service/internal/service/bookings/models"
	"github.com/booktable/reservation-service/pkg/types"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidDateRange    = "некорректный диапазон дат"
	msgInvalidStatus       = "некорректный статус бронирования"
	msgNotFound            = "ресторан не найден"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?restaurant_id=&start_date=&end_date=&status=&include_inactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	restaurantID, err := strconv.ParseInt(query.Get("restaurant_id"), 10, 64)
	if err != nil || restaurantID <= 0 {
		h.logger.Warn("GET /bookings - Invalid restaurant ID: %q", query.Get("restaurant_id"))
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	userID, _ := middleware.UserID(r.Context())
	role, _ := middleware.UserRole(r.Context())

	req := &models.GetRestaurantBookingsRequest{
		UserID:       userID,
		Role:         role,
		RestaurantID: restaurantID,
	}

	if raw := query.Get("start_date"); raw != "" {
		date, err := types.ParseDateString(raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid start_date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
	}
	if raw := query.Get("end_date"); raw != "" {
		date, err := types.ParseDateString(raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid end_date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &date
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if query.Get("include_inactive") == "true" {
		req.IncludeInactive = true
	}

	resp, err := h.service.GetRestaurantBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDateRange):
			h.logger.Warn("GET /bookings - Invalid date range: restaurant_id=%d", restaurantID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrRestaurantNotFound):
			h.logger.Warn("GET /bookings - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings - Access denied: restaurant_id=%d, user_id=%d", restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
