package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/booktable/reservation-service/internal/api/handlers"
	uc "github.com/booktable/reservation-service/internal/usecase/get_available_slots"
	"github.com/booktable/reservation-service/pkg/types"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidPartySize    = "некорректный размер компании"
	msgInvalidTime         = "некорректное время, ожидается формат HH:MM"
	msgInvalidTolerance    = "некорректный допуск в минутах"
	msgRestaurantNotFound  = "ресторан не найден"
	msgRestaurantClosed    = "ресторан закрыт в выбранную дату"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?restaurant_id=&date=&party_size=&time=&tolerance=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	restaurantID, err := strconv.ParseInt(query.Get("restaurant_id"), 10, 64)
	if err != nil || restaurantID <= 0 {
		h.logger.Warn("GET /availability - Invalid restaurant ID: %q", query.Get("restaurant_id"))
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	date, err := types.ParseDateString(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %q", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize, err := strconv.Atoi(query.Get("party_size"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid party size: %q", query.Get("party_size"))
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	req := &uc.Request{
		RestaurantID: restaurantID,
		Date:         date,
		PartySize:    partySize,
	}

	if raw := query.Get("time"); raw != "" {
		requested, err := types.NewTimeStringFromString(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid time: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.Time = &requested
	}

	if raw := query.Get("tolerance"); raw != "" {
		tolerance, err := strconv.Atoi(raw)
		if err != nil || tolerance < 0 {
			h.logger.Warn("GET /availability - Invalid tolerance: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidTolerance)
			return
		}
		req.Tolerance = &tolerance
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput), errors.Is(err, uc.ErrInvalidDate):
			h.logger.Warn("GET /availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, uc.ErrRestaurantNotFound):
			h.logger.Warn("GET /availability - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, uc.ErrRestaurantClosed):
			h.logger.Info("GET /availability - Restaurant closed: restaurant_id=%d, date=%s", restaurantID, date)
			handlers.RespondNotFound(w, msgRestaurantClosed)

		default:
			h.logger.Error("GET /availability - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
