package bookingapi

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено на сервере
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден или закрыт в запрошенный день
	ErrRestaurantNotFound = errors.New("restaurant not found or closed")

	// ErrAccessDenied возвращается при ответе 403 от сервера
	ErrAccessDenied = errors.New("access denied")

	// ErrTransitionConflict возвращается при ответе 409: переход статуса
	// отклонен или состояние изменилось конкурентно, требуется перечитать
	ErrTransitionConflict = errors.New("booking status conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrUnavailable возвращается, когда сервис бронирований недоступен
	// (сетевые ошибки, таймауты)
	ErrUnavailable = errors.New("bookingapi client: service unavailable")
)
