package update_restaurant_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/booktable/reservation-service/internal/api/handlers"
	"github.com/booktable/reservation-service/internal/api/middleware"
	"github.com/booktable/reservation-service/internal/service/restaurants"
	"github.com/booktable/reservation-service/internal/service/restaurants/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidHours        = "некорректные часы работы"
	msgNotFound            = "ресторан не найден"
	msgForbidden           = "доступ запрещен"
)

// UpdateHoursRequest HTTP request model
type UpdateHoursRequest struct {
	Hours []models.HoursEntry `json:"hours"`
}

type Handler struct {
	service RestaurantService
	logger  Logger
}

func NewHandler(service RestaurantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/restaurants/{restaurantId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/hours - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.UserID(r.Context())
	role, _ := middleware.UserRole(r.Context())

	resp, err := h.service.UpdateHours(r.Context(), &models.UpdateHoursRequest{
		UserID:       userID,
		Role:         role,
		RestaurantID: restaurantID,
		Hours:        req.Hours,
	})
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrInvalidHours):
			h.logger.Warn("PUT /restaurants/{id}/hours - Invalid hours: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("PUT /restaurants/{id}/hours - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, restaurants.ErrAccessDenied):
			h.logger.Warn("PUT /restaurants/{id}/hours - Access denied: restaurant_id=%d, user_id=%d", restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /restaurants/{id}/hours - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/hours - Hours updated: restaurant_id=%d, entries=%d, user_id=%d",
		restaurantID, len(resp.Hours), userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
