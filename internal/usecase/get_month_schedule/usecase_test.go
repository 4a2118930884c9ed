package get_month_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.RestaurantBookingsFilter
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	copy := *f.restaurant
	return &copy, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_May2025Grid(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Date: "2025-05-08", Time: "19:00", PartySize: 2, Status: domain.StatusConfirmed, TableNumber: "T1"},
			{ID: 2, Date: "2025-05-08", Time: "12:30", PartySize: 4, Status: domain.StatusCompleted, TableNumber: "T2"},
			// Хвост апреля тоже попадает в сетку
			{ID: 3, Date: "2025-04-30", Time: "18:00", PartySize: 2, Status: domain.StatusConfirmed, TableNumber: "T1"},
		},
	}
	restaurants := &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 5, ManagerID: 200}}

	uc := NewUseCase(bookings, restaurants, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 5, 8, 10, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       200,
		Role:         domain.RoleStaff,
		RestaurantID: 5,
		Year:         2025,
		Month:        5,
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 42)
	assert.Equal(t, 3, resp.Total)

	// Выборка покрывает всю сетку, включая хвосты соседних месяцев.
	require.NotNil(t, bookings.lastFilter.StartDate)
	require.NotNil(t, bookings.lastFilter.EndDate)
	assert.Equal(t, types.DateString("2025-04-28"), *bookings.lastFilter.StartDate)
	assert.Equal(t, types.DateString("2025-06-08"), *bookings.lastFilter.EndDate)
	assert.True(t, bookings.lastFilter.IncludeInactive)

	byDate := make(map[types.DateString]Day, len(resp.Days))
	for _, d := range resp.Days {
		byDate[d.Date] = d
	}

	today := byDate["2025-05-08"]
	assert.True(t, today.IsToday)
	assert.True(t, today.IsCurrentMonth)
	require.Len(t, today.Bookings, 2)
	assert.Equal(t, "19:00:00", today.Bookings[0].Time)

	april := byDate["2025-04-30"]
	assert.False(t, april.IsCurrentMonth)
	require.Len(t, april.Bookings, 1)

	empty := byDate["2025-05-09"]
	require.NotNil(t, empty.Bookings)
	assert.Empty(t, empty.Bookings)
}

func TestExecute_AccessDenied(t *testing.T) {
	bookings := &fakeBookingRepo{}
	restaurants := &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 5, ManagerID: 200}}
	uc := NewUseCase(bookings, restaurants, nopLogger{})

	tests := []struct {
		name   string
		userID int64
		role   string
	}{
		{name: "customer", userID: 100, role: domain.RoleCustomer},
		{name: "staff of another restaurant", userID: 999, role: domain.RoleStaff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				UserID:       tt.userID,
				Role:         tt.role,
				RestaurantID: 5,
				Year:         2025,
				Month:        5,
			})
			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRestaurantRepo{restaurant: &domain.Restaurant{}}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       200,
		Role:         domain.RoleAdmin,
		RestaurantID: 5,
		Year:         2025,
		Month:        13,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
