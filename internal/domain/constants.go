package domain

// Scheduling constants
const (
	// SlotIntervalMinutes is the step between generated reservation slots
	SlotIntervalMinutes = 30

	// DiningDurationMinutes is how long a table is held by one booking.
	// The last offered slot of a day starts this long before closing.
	DiningDurationMinutes = 90

	// DefaultMatchToleranceMinutes is the symmetric window around a
	// requested time within which an offered slot is considered a match
	DefaultMatchToleranceMinutes = 30
)

// Business validation constants
const (
	MinPartySize             = 1
	MaxPartySize             = 20
	MaxSpecialRequestsLength = 500
	MaxContactNameLength     = 100
	MaxContactPhoneLength    = 15

	MinCostRating = 1
	MaxCostRating = 4

	// BookingReferenceLength длина буквенно-цифрового кода бронирования
	BookingReferenceLength = 8
)

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	TimeFormat        = "15:04"      // HH:MM
	TimeFormatSeconds = "15:04:05"   // HH:MM:SS, wire form of the booking API
)

// InactiveStatuses список статусов, при которых бронирование не занимает стол.
// Используется при фильтрации выборок и подсчете доступности.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// TerminalStatuses список статусов, завершающих обычный жизненный цикл.
// completed и no_show персонал может откатить обратно, cancelled — нет.
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
