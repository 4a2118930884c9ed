package bookingapi

// Booking бронирование в проводном формате сервиса:
// дата "YYYY-MM-DD", время "HH:MM:SS"
type Booking struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	RestaurantID     int64   `json:"restaurant_id"`
	RestaurantName   string  `json:"restaurant_name"`
	TableID          int64   `json:"table_id"`
	TableNumber      string  `json:"table_number"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	PartySize        int     `json:"party_size"`
	Status           string  `json:"status"`
	ContactName      string  `json:"contact_name"`
	ContactEmail     string  `json:"contact_email"`
	ContactPhone     string  `json:"contact_phone"`
	SpecialRequests  *string `json:"special_requests,omitempty"`
	BookingReference string  `json:"booking_reference"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// BookingList список бронирований
type BookingList struct {
	Bookings []*Booking `json:"bookings"`
	Total    int        `json:"total"`
}

// Slot слот посадки с количеством свободных столов
type Slot struct {
	Time            string `json:"time"`
	AvailableTables int    `json:"available_tables"`
}

// Availability ответ на запрос доступных слотов
type Availability struct {
	Date         string `json:"date"`
	RestaurantID int64  `json:"restaurant_id"`
	PartySize    int    `json:"party_size"`
	Slots        []Slot `json:"available_slots"`
}

// StatusUpdateResult новое состояние бронирования после смены статуса
type StatusUpdateResult struct {
	ID               int64  `json:"id"`
	Status           string `json:"status"`
	BookingReference string `json:"booking_reference"`
}

// ErrorResponse модель ошибки от сервиса бронирований
type ErrorResponse struct {
	Error string `json:"error"`
}
