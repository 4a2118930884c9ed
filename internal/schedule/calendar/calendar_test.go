package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktable/reservation-service/pkg/types"
)

func TestBuildMonthGrid_May2025(t *testing.T) {
	// Май 2025: 1-е число — четверг, 31 день.
	grid := BuildMonthGrid(2025, time.May, types.DateString("2025-05-08"))

	require.Len(t, grid, GridSize)

	// Три хвостовых дня апреля: пн 28, вт 29, ср 30.
	assert.Equal(t, types.DateString("2025-04-28"), grid[0].Date)
	assert.Equal(t, types.DateString("2025-04-29"), grid[1].Date)
	assert.Equal(t, types.DateString("2025-04-30"), grid[2].Date)
	for i := 0; i < 3; i++ {
		assert.False(t, grid[i].IsCurrentMonth, "cell %d", i)
	}

	// Сам месяц.
	assert.Equal(t, types.DateString("2025-05-01"), grid[3].Date)
	assert.True(t, grid[3].IsCurrentMonth)
	assert.Equal(t, types.DateString("2025-05-31"), grid[33].Date)
	assert.True(t, grid[33].IsCurrentMonth)

	// Восемь ведущих дней июня.
	assert.Equal(t, types.DateString("2025-06-01"), grid[34].Date)
	assert.False(t, grid[34].IsCurrentMonth)
	assert.Equal(t, types.DateString("2025-06-08"), grid[41].Date)
	assert.False(t, grid[41].IsCurrentMonth)

	// IsToday ровно у одной ячейки.
	todayCount := 0
	for _, d := range grid {
		if d.IsToday {
			todayCount++
			assert.Equal(t, types.DateString("2025-05-08"), d.Date)
		}
	}
	assert.Equal(t, 1, todayCount)
}

func TestBuildMonthGrid_MonthStartsOnMonday(t *testing.T) {
	// Сентябрь 2025 начинается с понедельника: хвоста августа нет.
	grid := BuildMonthGrid(2025, time.September, types.DateString("2025-01-01"))

	require.Len(t, grid, GridSize)
	assert.Equal(t, types.DateString("2025-09-01"), grid[0].Date)
	assert.True(t, grid[0].IsCurrentMonth)

	// 30 дней сентября + 12 дней октября до 42 ячеек.
	assert.Equal(t, types.DateString("2025-09-30"), grid[29].Date)
	assert.Equal(t, types.DateString("2025-10-01"), grid[30].Date)
	assert.False(t, grid[30].IsCurrentMonth)
	assert.Equal(t, types.DateString("2025-10-12"), grid[41].Date)
}

func TestBuildMonthGrid_February(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		wantLast types.DateString
	}{
		{name: "common year", year: 2025, wantLast: "2025-02-28"},
		{name: "leap year", year: 2024, wantLast: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonthGrid(tt.year, time.February, types.DateString("1970-01-01"))
			require.Len(t, grid, GridSize)

			var last types.DateString
			for _, d := range grid {
				if d.IsCurrentMonth {
					last = d.Date
				}
			}
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestBuildMonthGrid_YearBoundary(t *testing.T) {
	// Январь 2026 начинается с четверга: хвост декабря 2025.
	grid := BuildMonthGrid(2026, time.January, types.DateString("2026-01-15"))

	require.Len(t, grid, GridSize)
	assert.Equal(t, types.DateString("2025-12-29"), grid[0].Date)
	assert.False(t, grid[0].IsCurrentMonth)
	assert.Equal(t, types.DateString("2026-01-01"), grid[3].Date)
	assert.True(t, grid[3].IsCurrentMonth)
}

func TestBuildMonthGrid_TodayOutsideMonth(t *testing.T) {
	grid := BuildMonthGrid(2025, time.May, types.DateString("2025-07-01"))

	for _, d := range grid {
		assert.False(t, d.IsToday, "cell %s", d.Date)
	}
}
