// Package dayindex группирует бронирования по календарным дням для
// быстрой выборки при отрисовке месячной сетки.
package dayindex

import (
	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

// Index бронирования месяца, сгруппированные по каноническому ключу
// даты YYYY-MM-DD. Внутри дня порядок прихода сохраняется.
type Index struct {
	byDay map[types.DateString][]domain.Booking
	total int
}

// Build строит индекс из плоского списка бронирований.
// Ключом служит поле Date брони как есть: оно уже каноническое,
// повторного парсинга не требуется.
func Build(bookings []domain.Booking) *Index {
	idx := &Index{
		byDay: make(map[types.DateString][]domain.Booking, len(bookings)),
	}
	for _, b := range bookings {
		idx.byDay[b.Date] = append(idx.byDay[b.Date], b)
		idx.total++
	}
	return idx
}

// ForDay возвращает бронирования дня в порядке их появления во входном
// списке. Для дня без бронирований возвращается пустой срез, не nil:
// вызывающий код не обязан различать "нет дня" и "день пуст".
func (i *Index) ForDay(date types.DateString) []domain.Booking {
	bookings, ok := i.byDay[date]
	if !ok {
		return []domain.Booking{}
	}
	out := make([]domain.Booking, len(bookings))
	copy(out, bookings)
	return out
}

// Count возвращает количество бронирований дня.
func (i *Index) Count(date types.DateString) int {
	return len(i.byDay[date])
}

// Total возвращает общее количество проиндексированных бронирований.
func (i *Index) Total() int {
	return i.total
}
