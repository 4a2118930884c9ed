package facade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/internal/integrations/bookingapi"
	"github.com/booktable/reservation-service/internal/schedule/lifecycle"
	"github.com/booktable/reservation-service/pkg/types"
)

type fakeAPI struct {
	bookings     *bookingapi.BookingList
	bookingsErr  error
	availability *bookingapi.Availability
	availErr     error
	updateResult *bookingapi.StatusUpdateResult
	updateErr    error

	bookingCalls []string
	updateCalls  []string
}

func (f *fakeAPI) GetBookings(_ context.Context, _ int64, startDate, endDate types.DateString) (*bookingapi.BookingList, error) {
	f.bookingCalls = append(f.bookingCalls, startDate.String()+".."+endDate.String())
	if f.bookingsErr != nil {
		return nil, f.bookingsErr
	}
	return f.bookings, nil
}

func (f *fakeAPI) GetAvailability(_ context.Context, _ int64, _ types.DateString, _ int, _ *types.TimeString, _ *int) (*bookingapi.Availability, error) {
	if f.availErr != nil {
		return nil, f.availErr
	}
	return f.availability, nil
}

func (f *fakeAPI) UpdateBookingStatus(_ context.Context, _ int64, status string) (*bookingapi.StatusUpdateResult, error) {
	f.updateCalls = append(f.updateCalls, status)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func wireBooking(id int64, date, clock string) *bookingapi.Booking {
	return &bookingapi.Booking{
		ID:           id,
		UserID:       7,
		RestaurantID: 1,
		TableID:      3,
		TableNumber:  "T1",
		Date:         date,
		Time:         clock,
		PartySize:    2,
		Status:       "confirmed",
		CreatedAt:    "2025-05-01T10:00:00Z",
		UpdatedAt:    "2025-05-01T10:00:00Z",
	}
}

func newFacade(api *fakeAPI) *Facade {
	clock := fixedClock{now: time.Date(2025, time.May, 8, 12, 0, 0, 0, time.UTC)}
	return New(api, clock, nopLogger{})
}

func TestMonthViewBucketsBookingsOverGrid(t *testing.T) {
	api := &fakeAPI{
		bookings: &bookingapi.BookingList{
			Bookings: []*bookingapi.Booking{
				wireBooking(1, "2025-05-08", "19:00:00"),
				wireBooking(2, "2025-05-08", "18:00:00"),
				wireBooking(3, "2025-04-29", "12:30:00"),
			},
			Total: 3,
		},
	}

	view, err := newFacade(api).MonthView(context.Background(), 1, 2025, time.May)
	require.NoError(t, err)

	assert.Len(t, view.Days, 42)
	assert.Equal(t, 3, view.Total)

	// Range covers the April tail and the June lead of the May grid.
	require.Len(t, api.bookingCalls, 1)
	assert.Equal(t, "2025-04-28..2025-06-08", api.bookingCalls[0])

	assert.Equal(t, types.DateString("2025-04-28"), view.Days[0].Date)
	assert.False(t, view.Days[0].IsCurrentMonth)

	var today, aprilTail *DayCell
	for i := range view.Days {
		switch view.Days[i].Date {
		case "2025-05-08":
			today = &view.Days[i]
		case "2025-04-29":
			aprilTail = &view.Days[i]
		}
	}
	require.NotNil(t, today)
	require.NotNil(t, aprilTail)

	assert.True(t, today.IsToday)
	require.Len(t, today.Bookings, 2)
	// Arrival order preserved within the bucket.
	assert.Equal(t, int64(1), today.Bookings[0].ID)
	assert.Equal(t, int64(2), today.Bookings[1].ID)
	assert.Equal(t, types.TimeString("19:00"), today.Bookings[0].Time)

	require.Len(t, aprilTail.Bookings, 1)
	assert.Equal(t, int64(3), aprilTail.Bookings[0].ID)

	// Cells without bookings still expose a non-nil slice.
	assert.NotNil(t, view.Days[41].Bookings)
	assert.Empty(t, view.Days[41].Bookings)
}

func TestMonthViewKeepsSnapshotOnFetchFailure(t *testing.T) {
	api := &fakeAPI{
		bookings: &bookingapi.BookingList{
			Bookings: []*bookingapi.Booking{wireBooking(1, "2025-05-08", "19:00:00")},
			Total:    1,
		},
	}
	f := newFacade(api)

	first, err := f.MonthView(context.Background(), 1, 2025, time.May)
	require.NoError(t, err)

	api.bookingsErr = bookingapi.ErrUnavailable

	stale, err := f.MonthView(context.Background(), 1, 2025, time.May)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	require.NotNil(t, stale)
	assert.Same(t, first, stale)
	assert.Equal(t, 1, stale.Total)
}

func TestMonthViewNoSnapshotOnFirstFailure(t *testing.T) {
	api := &fakeAPI{bookingsErr: bookingapi.ErrUnavailable}

	view, err := newFacade(api).MonthView(context.Background(), 1, 2025, time.May)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Nil(t, view)
}

func TestMonthViewSkipsMalformedBookings(t *testing.T) {
	api := &fakeAPI{
		bookings: &bookingapi.BookingList{
			Bookings: []*bookingapi.Booking{
				wireBooking(1, "2025-05-08", "19:00:00"),
				wireBooking(2, "08.05.2025", "19:00:00"),
			},
			Total: 2,
		},
	}

	view, err := newFacade(api).MonthView(context.Background(), 1, 2025, time.May)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Total)
}

func TestMonthViewRejectsInvalidMonth(t *testing.T) {
	api := &fakeAPI{}

	_, err := newFacade(api).MonthView(context.Background(), 1, 2025, time.Month(13))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, api.bookingCalls)
}

func TestAvailableTimesFiltersLocally(t *testing.T) {
	api := &fakeAPI{
		availability: &bookingapi.Availability{
			Date:         "2025-05-08",
			RestaurantID: 1,
			PartySize:    2,
			Slots: []bookingapi.Slot{
				{Time: "18:15:00", AvailableTables: 2},
				{Time: "18:35:00", AvailableTables: 1},
				{Time: "19:25:00", AvailableTables: 3},
				{Time: "20:05:00", AvailableTables: 1},
			},
		},
	}

	requested := types.TimeString("19:00")
	slots, err := newFacade(api).AvailableTimes(context.Background(), 1, "2025-05-08", 2, &requested, nil)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("18:35"), slots[0].Time)
	assert.Equal(t, types.TimeString("19:25"), slots[1].Time)
}

func TestAvailableTimesWithoutRequestedTime(t *testing.T) {
	api := &fakeAPI{
		availability: &bookingapi.Availability{
			Slots: []bookingapi.Slot{
				{Time: "18:00:00", AvailableTables: 1},
				{Time: "18:30:00", AvailableTables: 1},
			},
		},
	}

	slots, err := newFacade(api).AvailableTimes(context.Background(), 1, "2025-05-08", 2, nil, nil)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestAvailableTimesFetchFailure(t *testing.T) {
	api := &fakeAPI{availErr: bookingapi.ErrRestaurantNotFound}

	_, err := newFacade(api).AvailableTimes(context.Background(), 1, "2025-05-08", 2, nil, nil)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestTransitionValidatesBeforeNetwork(t *testing.T) {
	api := &fakeAPI{}
	f := newFacade(api)

	booking := &domain.Booking{ID: 1, Status: domain.StatusCancelled}

	_, err := f.Transition(context.Background(), booking, domain.StatusConfirmed, lifecycle.ActorStaff)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	assert.Empty(t, api.updateCalls, "no network call for a rejected transition")
}

func TestTransitionCommitsThroughAPI(t *testing.T) {
	api := &fakeAPI{
		updateResult: &bookingapi.StatusUpdateResult{ID: 1, Status: "completed"},
	}
	f := newFacade(api)

	booking := &domain.Booking{ID: 1, Status: domain.StatusConfirmed}

	result, err := f.Transition(context.Background(), booking, domain.StatusCompleted, lifecycle.ActorStaff)
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, []string{"completed"}, api.updateCalls)
}

func TestTransitionSurfacesConflict(t *testing.T) {
	api := &fakeAPI{updateErr: bookingapi.ErrTransitionConflict}
	f := newFacade(api)

	booking := &domain.Booking{ID: 1, Status: domain.StatusConfirmed}

	_, err := f.Transition(context.Background(), booking, domain.StatusCancelled, lifecycle.ActorCustomer)
	assert.True(t, errors.Is(err, bookingapi.ErrTransitionConflict))
}
