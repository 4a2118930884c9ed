package create_booking

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден или не одобрен
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в указанную дату
	ErrRestaurantClosed = errors.New("restaurant is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда время посадки не попадает
	// в часы работы
	ErrOutsideOperatingHours = errors.New("time is outside operating hours")

	// ErrNoTablesAvailable возвращается, когда нет свободного стола
	// подходящей вместимости
	ErrNoTablesAvailable = errors.New("no tables available")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
