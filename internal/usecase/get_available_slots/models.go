package get_available_slots

import (
	"github.com/booktable/reservation-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID       int64             // ID пользователя (для логирования, не влияет на результат)
	RestaurantID int64             // ID ресторана
	Date         types.DateString  // Дата посадки
	PartySize    int               // Размер компании
	Time         *types.TimeString // Желаемое время (опционально, включает фильтр по допуску)
	Tolerance    *int              // Допуск в минутах вокруг желаемого времени (по умолчанию 30)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         types.DateString `json:"date"`
	RestaurantID int64            `json:"restaurant_id"`
	PartySize    int              `json:"party_size"`
	Slots        []Slot           `json:"available_slots"`
}

// Slot слот посадки с количеством свободных столов
type Slot struct {
	Time            string `json:"time"` // "19:00:00"
	AvailableTables int    `json:"available_tables"`
}
