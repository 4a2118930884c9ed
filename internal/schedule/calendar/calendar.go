// Package calendar строит сетку месячного календаря для отображения
// расписания бронирований. Пакет чистый: никаких запросов и побочных
// эффектов, результат полностью определяется входными аргументами.
package calendar

import (
	"time"

	"github.com/booktable/reservation-service/pkg/types"
)

// GridSize размер сетки месяца: 6 недель по 7 дней.
// Сетка всегда дополняется до константных 6 строк независимо от того,
// сколько недель реально занимает месяц.
const GridSize = 42

// DaysPerWeek дней в строке сетки.
const DaysPerWeek = 7

// Day одна ячейка сетки. Значения эфемерны: сетка пересобирается на
// каждую смену месяца и никогда не хранится.
type Day struct {
	Date           types.DateString
	IsCurrentMonth bool
	IsToday        bool
}

// BuildMonthGrid строит сетку из ровно 42 ячеек для месяца (year, month).
// Неделя начинается с понедельника. Ячейки до 1-го числа заполняются
// хвостом предыдущего месяца, ячейки после последнего числа — началом
// следующего; обе группы помечены IsCurrentMonth = false.
//
// IsToday определяется точным совпадением календарной даты с today,
// сравнение по канонической строке YYYY-MM-DD, без сравнения временных
// меток: это исключает ложные несовпадения из-за часовых поясов.
func BuildMonthGrid(year int, month time.Month, today types.DateString) []Day {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Сдвиг первого числа от понедельника: 0, если месяц начинается
	// с понедельника, 6 — если с воскресенья.
	leading := (int(firstDay.Weekday()) + 6) % 7

	grid := make([]Day, 0, GridSize)

	// Хвост предыдущего месяца.
	for i := leading; i > 0; i-- {
		date := types.NewDateString(firstDay.AddDate(0, 0, -i))
		grid = append(grid, Day{
			Date:    date,
			IsToday: date == today,
		})
	}

	// Дни текущего месяца.
	daysInMonth := daysIn(year, month)
	for d := 1; d <= daysInMonth; d++ {
		date := types.NewDateStringFromParts(year, month, d)
		grid = append(grid, Day{
			Date:           date,
			IsCurrentMonth: true,
			IsToday:        date == today,
		})
	}

	// Начало следующего месяца до полных 42 ячеек.
	nextMonthFirst := firstDay.AddDate(0, 1, 0)
	for i := 0; len(grid) < GridSize; i++ {
		date := types.NewDateString(nextMonthFirst.AddDate(0, 0, i))
		grid = append(grid, Day{
			Date:    date,
			IsToday: date == today,
		})
	}

	return grid
}

// daysIn возвращает количество дней в месяце.
func daysIn(year int, month time.Month) int {
	// День 0 следующего месяца — последний день текущего.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
