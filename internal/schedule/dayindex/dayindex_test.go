package dayindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

func booking(id int64, date types.DateString, tm types.TimeString) domain.Booking {
	return domain.Booking{
		ID:     id,
		Date:   date,
		Time:   tm,
		Status: domain.StatusConfirmed,
	}
}

func TestBuild_GroupsByDate(t *testing.T) {
	bookings := []domain.Booking{
		booking(1, "2025-05-08", "19:00"),
		booking(2, "2025-05-10", "12:30"),
		booking(3, "2025-05-08", "18:00"),
		booking(4, "2025-05-08", "20:30"),
	}

	idx := Build(bookings)

	assert.Equal(t, 4, idx.Total())
	assert.Equal(t, 3, idx.Count("2025-05-08"))
	assert.Equal(t, 1, idx.Count("2025-05-10"))
	assert.Equal(t, 0, idx.Count("2025-05-09"))
}

func TestForDay_PreservesArrivalOrder(t *testing.T) {
	// Бронирования дня возвращаются в порядке входного списка,
	// даже если по времени они идут вразнобой.
	bookings := []domain.Booking{
		booking(1, "2025-05-08", "19:00"),
		booking(2, "2025-05-08", "12:30"),
		booking(3, "2025-05-08", "21:00"),
	}

	day := Build(bookings).ForDay("2025-05-08")

	require.Len(t, day, 3)
	assert.Equal(t, int64(1), day[0].ID)
	assert.Equal(t, int64(2), day[1].ID)
	assert.Equal(t, int64(3), day[2].ID)
}

func TestForDay_EmptyDayIsNotNil(t *testing.T) {
	idx := Build([]domain.Booking{booking(1, "2025-05-08", "19:00")})

	day := idx.ForDay("2025-05-09")

	require.NotNil(t, day)
	assert.Empty(t, day)
}

func TestForDay_ReturnsCopy(t *testing.T) {
	idx := Build([]domain.Booking{booking(1, "2025-05-08", "19:00")})

	day := idx.ForDay("2025-05-08")
	day[0].ID = 99

	assert.Equal(t, int64(1), idx.ForDay("2025-05-08")[0].ID)
}

func TestBuild_EmptyInput(t *testing.T) {
	idx := Build(nil)

	assert.Equal(t, 0, idx.Total())
	assert.Empty(t, idx.ForDay("2025-05-08"))
}
