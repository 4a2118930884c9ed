package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

func TestGenerateDaySlots(t *testing.T) {
	tests := []struct {
		name    string
		opening types.TimeString
		closing types.TimeString
		want    []types.TimeString
	}{
		{
			name:    "regular evening",
			opening: "17:00",
			closing: "20:00",
			// Последний слот в 18:30: посадка 90 минут заканчивается
			// ровно к закрытию.
			want: []types.TimeString{"17:00", "17:30", "18:00", "18:30"},
		},
		{
			name:    "window shorter than dining duration",
			opening: "17:00",
			closing: "18:00",
			want:    []types.TimeString{},
		},
		{
			name:    "window equals dining duration",
			opening: "17:00",
			closing: "18:30",
			want:    []types.TimeString{"17:00"},
		},
		{
			name:    "late closing stops before midnight",
			opening: "22:00",
			closing: "23:59",
			want:    []types.TimeString{"22:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generateDaySlots(tt.opening, tt.closing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterPastSlots(t *testing.T) {
	slots := []types.TimeString{"12:00", "18:00", "19:30"}
	now := time.Date(2025, 5, 8, 15, 0, 0, 0, time.UTC)

	t.Run("today drops elapsed slots", func(t *testing.T) {
		got := filterPastSlots(slots, "2025-05-08", now)
		assert.Equal(t, []types.TimeString{"18:00", "19:30"}, got)
	})

	t.Run("future date keeps all slots", func(t *testing.T) {
		got := filterPastSlots(slots, "2025-05-09", now)
		assert.Equal(t, slots, got)
	})
}

func TestCountFreeTables(t *testing.T) {
	tables := []*domain.Table{
		{ID: 1, TableNumber: "T1", Capacity: 2},
		{ID: 2, TableNumber: "T2", Capacity: 4},
	}

	confirmed := func(tableID int64, tm types.TimeString) *domain.Booking {
		return &domain.Booking{TableID: tableID, Time: tm, Status: domain.StatusConfirmed}
	}

	t.Run("no bookings", func(t *testing.T) {
		assert.Equal(t, 2, countFreeTables("19:00", tables, nil))
	})

	t.Run("overlapping booking blocks its table", func(t *testing.T) {
		bookings := []*domain.Booking{confirmed(1, "18:00")}
		// Посадка 18:00-19:30 пересекается со слотом 19:00-20:30.
		assert.Equal(t, 1, countFreeTables("19:00", tables, bookings))
	})

	t.Run("back to back bookings do not conflict", func(t *testing.T) {
		bookings := []*domain.Booking{confirmed(1, "17:30")}
		// Посадка 17:30-19:00 заканчивается ровно к началу слота 19:00.
		assert.Equal(t, 2, countFreeTables("19:00", tables, bookings))
	})

	t.Run("cancelled booking frees the table", func(t *testing.T) {
		cancelled := &domain.Booking{TableID: 1, Time: "19:00", Status: domain.StatusCancelled}
		assert.Equal(t, 2, countFreeTables("19:00", tables, []*domain.Booking{cancelled}))
	})

	t.Run("all tables taken", func(t *testing.T) {
		bookings := []*domain.Booking{confirmed(1, "19:00"), confirmed(2, "19:30")}
		assert.Equal(t, 0, countFreeTables("19:00", tables, bookings))
	})
}
