package get_pending_restaurants

import (
	"errors"
	"net/http"

	"github.com/booktable/reservation-service/internal/api/handlers"
	"github.com/booktable/reservation-service/internal/api/middleware"
	"github.com/booktable/reservation-service/internal/service/restaurants"
)

const msgForbidden = "доступ запрещен"

type Handler struct {
	service RestaurantsService
	logger  Logger
}

func NewHandler(service RestaurantsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.UserRole(r.Context())

	resp, err := h.service.GetPending(r.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrAccessDenied):
			h.logger.Warn("GET /restaurants/pending - Access denied: role=%q", role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /restaurants/pending - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
