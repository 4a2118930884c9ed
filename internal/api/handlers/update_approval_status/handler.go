package update_approval_status

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
	msgInvalidStatus       = "некорректный статус модерации"
	msgNotFound            = "ресторан не найден"
	msgForbidden           = "доступ запрещен"
)

// UpdateApprovalRequest HTTP request model
type UpdateApprovalRequest struct {
	Status string `json:"status"`
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

// Handle PATCH /api/v1/restaurants/{restaurantId}/approval
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /restaurants/{id}/approval - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req UpdateApprovalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /restaurants/{id}/approval - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.UserID(r.Context())
	role, _ := middleware.UserRole(r.Context())

	err = h.service.UpdateApprovalStatus(r.Context(), &models.UpdateApprovalRequest{
		UserID:       userID,
		Role:         role,
		RestaurantID: restaurantID,
		Status:       req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrInvalidApprovalStatus):
			h.logger.Warn("PATCH /restaurants/{id}/approval - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("PATCH /restaurants/{id}/approval - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, restaurants.ErrAccessDenied):
			h.logger.Warn("PATCH /restaurants/{id}/approval - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /restaurants/{id}/approval - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /restaurants/{id}/approval - Status updated: restaurant_id=%d, status=%s, user_id=%d",
		restaurantID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
