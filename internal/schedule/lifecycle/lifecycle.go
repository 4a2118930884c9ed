// Package lifecycle проверяет допустимость переходов статуса
// бронирования с учётом роли инициатора.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
)

// Actor роль инициатора перехода.
type Actor string

const (
	// ActorCustomer гость, владелец бронирования.
	ActorCustomer Actor = "customer"
	// ActorStaff сотрудник или менеджер ресторана.
	ActorStaff Actor = "staff"
)

// ErrInvalidTransition переход из текущего статуса в запрошенный
// не разрешён для данной роли.
var ErrInvalidTransition = errors.New("lifecycle: invalid status transition")

// ErrUnknownActor роль инициатора не распознана.
var ErrUnknownActor = errors.New("lifecycle: unknown actor")

type transitionKey struct {
	from domain.BookingStatus
	to   domain.BookingStatus
}

// transitions допустимые переходы и минимально необходимая роль.
// Ключи, которых нет в таблице, запрещены для всех: в частности,
// cancelled — терминальный статус без исключений, из него выхода нет.
var transitions = map[transitionKey]Actor{
	{domain.StatusConfirmed, domain.StatusCancelled}: ActorCustomer,
	{domain.StatusConfirmed, domain.StatusCompleted}: ActorStaff,
	{domain.StatusConfirmed, domain.StatusNoShow}:    ActorStaff,
	// Персонал может откатить ошибочно проставленный итог.
	{domain.StatusCompleted, domain.StatusConfirmed}: ActorStaff,
	{domain.StatusNoShow, domain.StatusConfirmed}:    ActorStaff,
}

// RequestTransition проверяет переход from -> to для роли actor.
// Возвращает nil, если переход допустим, иначе ErrInvalidTransition
// с пояснением. Переход в тот же статус не считается допустимым:
// вызывающий код не должен маскировать гонки повторной записью.
func RequestTransition(from, to domain.BookingStatus, actor Actor) error {
	if actor != ActorCustomer && actor != ActorStaff {
		return fmt.Errorf("%w: %q", ErrUnknownActor, actor)
	}

	if from == to {
		return fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, from)
	}

	required, ok := transitions[transitionKey{from: from, to: to}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	if required == ActorStaff && actor != ActorStaff {
		return fmt.Errorf("%w: %s -> %s requires staff", ErrInvalidTransition, from, to)
	}

	return nil
}

// AllowedTransitions возвращает статусы, достижимые из from для роли
// actor. Используется API для подсказки клиенту доступных действий.
func AllowedTransitions(from domain.BookingStatus, actor Actor) []domain.BookingStatus {
	out := make([]domain.BookingStatus, 0, 2)
	for _, to := range []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		if RequestTransition(from, to, actor) == nil {
			out = append(out, to)
		}
	}
	return out
}
