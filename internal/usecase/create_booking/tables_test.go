package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

func TestPickTable(t *testing.T) {
	// Отсортированы по вместимости, как отдает репозиторий.
	tables := []*domain.Table{
		{ID: 1, TableNumber: "T1", Capacity: 2},
		{ID: 2, TableNumber: "T2", Capacity: 4},
		{ID: 3, TableNumber: "T3", Capacity: 6},
	}

	confirmed := func(tableID int64, tm types.TimeString) *domain.Booking {
		return &domain.Booking{TableID: tableID, Time: tm, Status: domain.StatusConfirmed}
	}

	t.Run("smallest free table wins", func(t *testing.T) {
		got := pickTable("19:00", tables, nil)
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("skips overlapping booking", func(t *testing.T) {
		bookings := []*domain.Booking{confirmed(1, "18:00")}
		got := pickTable("19:00", tables, bookings)
		require.NotNil(t, got)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("back to back booking does not block", func(t *testing.T) {
		bookings := []*domain.Booking{confirmed(1, "17:30")}
		got := pickTable("19:00", tables, bookings)
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		cancelled := &domain.Booking{TableID: 1, Time: "19:00", Status: domain.StatusCancelled}
		got := pickTable("19:00", tables, []*domain.Booking{cancelled})
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("all tables taken", func(t *testing.T) {
		bookings := []*domain.Booking{
			confirmed(1, "19:00"),
			confirmed(2, "18:30"),
			confirmed(3, "19:30"),
		}
		assert.Nil(t, pickTable("19:00", tables, bookings))
	})
}

func TestValidateWithinHours(t *testing.T) {
	hours := &domain.OperatingHours{
		Day:         3,
		OpeningTime: "17:00",
		ClosingTime: "22:00",
	}

	tests := []struct {
		name    string
		slot    types.TimeString
		wantErr bool
	}{
		{name: "at opening", slot: "17:00", wantErr: false},
		{name: "last possible seating", slot: "20:30", wantErr: false},
		{name: "before opening", slot: "16:30", wantErr: true},
		{name: "seating runs past closing", slot: "21:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWithinHours(tt.slot, hours)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutsideOperatingHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
