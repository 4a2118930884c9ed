package transition_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktable/reservation-service/internal/domain"
	bookingRepo "github.com/booktable/reservation-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking    *domain.Booking
	updateErrs []error
	updates    []domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copy := *f.booking
	return &copy, nil
}

func (f *fakeBookingRepo) UpdateStatusFrom(_ context.Context, _ int64, from, to domain.BookingStatus) error {
	if len(f.updateErrs) > 0 {
		err := f.updateErrs[0]
		f.updateErrs = f.updateErrs[1:]
		if err != nil {
			return err
		}
	}
	if f.booking.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	f.booking.Status = to
	f.updates = append(f.updates, to)
	return nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	copy := *f.restaurant
	return &copy, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(status domain.BookingStatus) (*UseCase, *fakeBookingRepo) {
	bookings := &fakeBookingRepo{
		booking: &domain.Booking{
			ID:           7,
			UserID:       100,
			RestaurantID: 5,
			Status:       status,
		},
	}
	restaurants := &fakeRestaurantRepo{
		restaurant: &domain.Restaurant{ID: 5, ManagerID: 200},
	}
	return NewUseCase(bookings, restaurants, nopLogger{}), bookings
}

func TestExecute_CustomerCancelsOwnBooking(t *testing.T) {
	uc, repo := newFixture(domain.StatusConfirmed)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		Role:      domain.RoleCustomer,
		BookingID: 7,
		Status:    "cancelled",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.booking.Status)
}

func TestExecute_ManagerCompletesBooking(t *testing.T) {
	uc, _ := newFixture(domain.StatusConfirmed)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    200,
		Role:      domain.RoleStaff,
		BookingID: 7,
		Status:    "completed",
	})

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestExecute_CustomerCannotComplete(t *testing.T) {
	uc, _ := newFixture(domain.StatusConfirmed)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		Role:      domain.RoleCustomer,
		BookingID: 7,
		Status:    "completed",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_StrangerDenied(t *testing.T) {
	uc, _ := newFixture(domain.StatusConfirmed)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    999,
		Role:      domain.RoleCustomer,
		BookingID: 7,
		Status:    "cancelled",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_CancelledIsFinal(t *testing.T) {
	uc, _ := newFixture(domain.StatusCancelled)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    200,
		Role:      domain.RoleStaff,
		BookingID: 7,
		Status:    "confirmed",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_UnknownStatus(t *testing.T) {
	uc, _ := newFixture(domain.StatusConfirmed)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		Role:      domain.RoleCustomer,
		BookingID: 7,
		Status:    "eaten",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _ := newFixture(domain.StatusConfirmed)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		Role:      domain.RoleCustomer,
		BookingID: 42,
		Status:    "cancelled",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_RetriesOnceOnConcurrentChange(t *testing.T) {
	uc, repo := newFixture(domain.StatusConfirmed)
	// Первый compare-and-set проигрывает гонку, второй проходит.
	repo.updateErrs = []error{bookingRepo.ErrStatusConflict}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    200,
		Role:      domain.RoleStaff,
		BookingID: 7,
		Status:    "completed",
	})

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestExecute_ConflictAfterRetry(t *testing.T) {
	uc, repo := newFixture(domain.StatusConfirmed)
	repo.updateErrs = []error{bookingRepo.ErrStatusConflict, bookingRepo.ErrStatusConflict}

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    200,
		Role:      domain.RoleStaff,
		BookingID: 7,
		Status:    "completed",
	})

	assert.ErrorIs(t, err, ErrTransitionConflict)
}
