package slotmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/ptr"
	"github.com/booktable/reservation-service/pkg/types"
)

func slots(times ...types.TimeString) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(times))
	for _, tm := range times {
		out = append(out, domain.TimeSlot{Time: tm, AvailableTables: 1})
	}
	return out
}

func times(slots []domain.TimeSlot) []types.TimeString {
	out := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestMatch_DefaultTolerance(t *testing.T) {
	offered := slots("18:15", "18:35", "19:25", "20:05")

	got, err := Match(offered, ptr.Ptr(types.TimeString("19:00")), 30)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"18:35", "19:25"}, times(got))
}

func TestMatch_InclusiveBounds(t *testing.T) {
	// Слоты ровно на границе допуска проходят.
	offered := slots("18:30", "19:30")

	got, err := Match(offered, ptr.Ptr(types.TimeString("19:00")), 30)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"18:30", "19:30"}, times(got))
}

func TestMatch_ZeroTolerance(t *testing.T) {
	offered := slots("18:30", "19:00", "19:30")

	got, err := Match(offered, ptr.Ptr(types.TimeString("19:00")), 0)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"19:00"}, times(got))
}

func TestMatch_NilRequestedReturnsAll(t *testing.T) {
	offered := slots("18:15", "18:35", "19:25")

	got, err := Match(offered, nil, 30)

	require.NoError(t, err)
	assert.Equal(t, times(offered), times(got))

	// Возвращается копия, не исходный срез.
	got[0].AvailableTables = 99
	assert.Equal(t, 1, offered[0].AvailableTables)
}

func TestMatch_PreservesOrder(t *testing.T) {
	offered := slots("19:25", "18:35", "19:00")

	got, err := Match(offered, ptr.Ptr(types.TimeString("19:00")), 30)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"19:25", "18:35", "19:00"}, times(got))
}

func TestMatch_NegativeTolerance(t *testing.T) {
	_, err := Match(slots("19:00"), ptr.Ptr(types.TimeString("19:00")), -1)

	assert.ErrorIs(t, err, ErrNegativeTolerance)
}

func TestMatch_MalformedTimes(t *testing.T) {
	t.Run("requested", func(t *testing.T) {
		_, err := Match(slots("19:00"), ptr.Ptr(types.TimeString("7pm")), 30)
		assert.Error(t, err)
	})

	t.Run("offered", func(t *testing.T) {
		_, err := Match(slots("25:61"), ptr.Ptr(types.TimeString("19:00")), 30)
		assert.Error(t, err)
	})
}

func TestMatchDefault(t *testing.T) {
	got, err := MatchDefault(slots("18:15", "18:35"), ptr.Ptr(types.TimeString("19:00")))

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"18:35"}, times(got))
}
