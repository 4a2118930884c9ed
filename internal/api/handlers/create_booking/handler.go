package create_booking

import (
	"errors"
	"net/http"

	"github.com/booktable/reservation-service/internal/api/handlers"
	"github.com/booktable/reservation-service/internal/api/middleware"
	uc "github.com/booktable/reservation-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время"
	msgRestaurantNotFound = "ресторан не найден"
	msgRestaurantClosed   = "ресторан закрыт в выбранную дату"
	msgOutsideHours       = "время вне часов работы ресторана"
	msgNoTables           = "нет свободных столов на выбранное время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput), errors.Is(err, uc.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, uc.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, uc.ErrRestaurantClosed):
			h.logger.Warn("POST /bookings - Restaurant closed: restaurant_id=%d, date=%s", req.RestaurantID, req.Date)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, uc.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: restaurant_id=%d, time=%s", req.RestaurantID, req.Time)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, uc.ErrNoTablesAvailable):
			h.logger.Warn("POST /bookings - No tables: restaurant_id=%d, date=%s, time=%s, party=%d",
				req.RestaurantID, req.Date, req.Time, req.PartySize)
			handlers.RespondConflict(w, msgNoTables)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, reference=%s, user_id=%d",
		resp.ID, resp.BookingReference, userID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
