// Package slotmatch фильтрует предложенные слоты по близости к
// запрошенному гостем времени.
package slotmatch

import (
	"errors"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/types"
)

// ErrNegativeTolerance допуск не может быть отрицательным.
var ErrNegativeTolerance = errors.New("slotmatch: tolerance must not be negative")

// Match возвращает слоты, время которых отстоит от requested не более
// чем на toleranceMinutes в любую сторону. Границы окна включительны:
// слот ровно на краю допуска проходит фильтр.
//
// При requested == nil фильтрация не выполняется, возвращается копия
// всех слотов. Относительный порядок слотов всегда сохраняется.
func Match(offered []domain.TimeSlot, requested *types.TimeString, toleranceMinutes int) ([]domain.TimeSlot, error) {
	if toleranceMinutes < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeTolerance, toleranceMinutes)
	}

	if requested == nil {
		out := make([]domain.TimeSlot, len(offered))
		copy(out, offered)
		return out, nil
	}

	want, err := requested.Minutes()
	if err != nil {
		return nil, fmt.Errorf("slotmatch: invalid requested time: %w", err)
	}

	matched := make([]domain.TimeSlot, 0, len(offered))
	for _, slot := range offered {
		have, err := slot.Time.Minutes()
		if err != nil {
			return nil, fmt.Errorf("slotmatch: invalid slot time %q: %w", slot.Time, err)
		}
		diff := have - want
		if diff < 0 {
			diff = -diff
		}
		if diff <= toleranceMinutes {
			matched = append(matched, slot)
		}
	}
	return matched, nil
}

// MatchDefault как Match с допуском по умолчанию.
func MatchDefault(offered []domain.TimeSlot, requested *types.TimeString) ([]domain.TimeSlot, error) {
	return Match(offered, requested, domain.DefaultMatchToleranceMinutes)
}
