package get_month_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/booktable/reservation-service/internal/api/handlers"
	"github.com/booktable/reservation-service/internal/api/middleware"
	uc "github.com/booktable/reservation-service/internal/usecase/get_month_schedule"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidYearMonth    = "некорректные год или месяц"
	msgNotFound            = "ресторан не найден"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	useCase GetMonthScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/schedule?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/schedule - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := r.URL.Query()
	year, yearErr := strconv.Atoi(query.Get("year"))
	month, monthErr := strconv.Atoi(query.Get("month"))
	if yearErr != nil || monthErr != nil {
		h.logger.Warn("GET /restaurants/{id}/schedule - Invalid year/month: year=%q, month=%q",
			query.Get("year"), query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	userID, _ := middleware.UserID(r.Context())
	role, _ := middleware.UserRole(r.Context())

	resp, err := h.useCase.Execute(r.Context(), &uc.Request{
		UserID:       userID,
		Role:         role,
		RestaurantID: restaurantID,
		Year:         year,
		Month:        month,
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/schedule - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYearMonth)

		case errors.Is(err, uc.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/schedule - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, uc.ErrAccessDenied):
			h.logger.Warn("GET /restaurants/{id}/schedule - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /restaurants/{id}/schedule - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
