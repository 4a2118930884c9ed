package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := types.ParseDateString(string(req.Date)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := req.Time.Minutes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	name := strings.TrimSpace(req.ContactName)
	if name == "" {
		return fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxContactNameLength {
		return fmt.Errorf("%w: contact name is too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.ContactEmail)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid contact email is required", ErrInvalidInput)
	}

	phone := strings.TrimSpace(req.ContactPhone)
	if phone == "" {
		return fmt.Errorf("%w: contact phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxContactPhoneLength {
		return fmt.Errorf("%w: contact phone is too long", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests are too long", ErrInvalidInput)
	}

	return nil
}

// validateDateTime проверяет, что дата и время посадки не в прошлом
func validateDateTime(date types.DateString, slot types.TimeString, now time.Time) error {
	today := types.NewDateString(now)
	if date.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date)
	}
	if date == today && !slot.IsAfter(types.NewTimeString(now)) {
		return fmt.Errorf("%w: time %s has already passed", ErrInvalidDate, slot)
	}
	return nil
}

// validateWithinHours проверяет, что посадка целиком умещается в часы работы
func validateWithinHours(slot types.TimeString, hours *domain.OperatingHours) error {
	if slot.IsBefore(hours.OpeningTime) {
		return fmt.Errorf("%w: %s is before opening at %s", ErrOutsideOperatingHours, slot, hours.OpeningTime)
	}

	end, err := slot.AddMinutes(domain.DiningDurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: seating at %s does not finish before midnight", ErrOutsideOperatingHours, slot)
	}
	if end.IsAfter(hours.ClosingTime) {
		return fmt.Errorf("%w: seating at %s does not finish before closing at %s",
			ErrOutsideOperatingHours, slot, hours.ClosingTime)
	}

	return nil
}
