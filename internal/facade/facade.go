// Package facade composes the calendar grid, day index, slot matcher and
// status machine over the reservation service HTTP API. It is the client-side
// counterpart of the server: a staff console talks to the facade, never to the
// API directly.
package facade

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/internal/integrations/bookingapi"
	"github.com/booktable/reservation-service/internal/schedule/calendar"
	"github.com/booktable/reservation-service/internal/schedule/dayindex"
	"github.com/booktable/reservation-service/internal/schedule/lifecycle"
	"github.com/booktable/reservation-service/internal/schedule/slotmatch"
	"github.com/booktable/reservation-service/pkg/types"
)

type monthKey struct {
	restaurantID int64
	year         int
	month        time.Month
}

// Facade caches the last successfully fetched MonthView per restaurant month.
// When a refresh fails the stale snapshot is returned together with
// ErrFetchFailed, so the caller can keep rendering while showing the failure.
type Facade struct {
	api   BookingAPI
	clock TimeProvider
	log   Logger

	mu     sync.Mutex
	months map[monthKey]*MonthView
}

func New(api BookingAPI, clock TimeProvider, log Logger) *Facade {
	return &Facade{
		api:    api,
		clock:  clock,
		log:    log,
		months: make(map[monthKey]*MonthView),
	}
}

// MonthView fetches the restaurant's bookings covering the 42-cell grid of the
// given month and buckets them per day. The snapshot replaces any previous one
// for the same month; on fetch failure the previous snapshot, if any, is
// returned alongside ErrFetchFailed.
func (f *Facade) MonthView(ctx context.Context, restaurantID int64, year int, month time.Month) (*MonthView, error) {
	if restaurantID <= 0 || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: restaurant=%d year=%d month=%d", ErrInvalidInput, restaurantID, year, month)
	}

	today := types.NewDateString(f.clock.Now())
	grid := calendar.BuildMonthGrid(year, month, today)
	startDate := grid[0].Date
	endDate := grid[len(grid)-1].Date

	key := monthKey{restaurantID: restaurantID, year: year, month: month}

	list, err := f.api.GetBookings(ctx, restaurantID, startDate, endDate)
	if err != nil {
		f.mu.Lock()
		previous := f.months[key]
		f.mu.Unlock()

		if previous != nil {
			f.log.Warn("MonthView: refresh failed for restaurant=%d %d-%02d, keeping snapshot from %s: %v",
				restaurantID, year, month, previous.FetchedAt.Format(time.RFC3339), err)
			return previous, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	bookings := make([]domain.Booking, 0, len(list.Bookings))
	for _, wire := range list.Bookings {
		b, convErr := toDomainBooking(wire)
		if convErr != nil {
			f.log.Warn("MonthView: skipping malformed booking: %v", convErr)
			continue
		}
		bookings = append(bookings, b)
	}

	index := dayindex.Build(bookings)

	days := make([]DayCell, 0, len(grid))
	for _, cell := range grid {
		days = append(days, DayCell{
			Date:           cell.Date,
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday:        cell.IsToday,
			Bookings:       index.ForDay(cell.Date),
		})
	}

	view := &MonthView{
		RestaurantID: restaurantID,
		Year:         year,
		Month:        month,
		Days:         days,
		Total:        index.Total(),
		FetchedAt:    f.clock.Now(),
	}

	f.mu.Lock()
	f.months[key] = view
	f.mu.Unlock()

	return view, nil
}

// AvailableTimes fetches the full slot list for the date and filters it
// locally around the requested time. A nil requested time returns every
// offered slot; a nil tolerance uses the default.
func (f *Facade) AvailableTimes(ctx context.Context, restaurantID int64, date types.DateString, partySize int, requested *types.TimeString, toleranceMinutes *int) ([]domain.TimeSlot, error) {
	availability, err := f.api.GetAvailability(ctx, restaurantID, date, partySize, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	offered, err := toDomainSlots(availability.Slots)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	var matched []domain.TimeSlot
	if toleranceMinutes == nil {
		matched, err = slotmatch.MatchDefault(offered, requested)
	} else {
		matched, err = slotmatch.Match(offered, requested, *toleranceMinutes)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return matched, nil
}

// Transition validates the status change against the machine before touching
// the network, then commits it through the API. bookingapi.ErrTransitionConflict
// from the server means the booking changed concurrently: the caller must
// refresh its view and retry from the fresh status.
func (f *Facade) Transition(ctx context.Context, booking *domain.Booking, target domain.BookingStatus, actor lifecycle.Actor) (*bookingapi.StatusUpdateResult, error) {
	if err := lifecycle.RequestTransition(booking.Status, target, actor); err != nil {
		return nil, err
	}

	result, err := f.api.UpdateBookingStatus(ctx, booking.ID, string(target))
	if err != nil {
		return nil, err
	}

	f.log.Info("Transition: booking=%d %s -> %s by %s", booking.ID, booking.Status, result.Status, actor)
	return result, nil
}
