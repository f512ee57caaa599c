package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date         time.Time // Дата, на которую запрашивались слоты
	Open         bool      // false, если мастерская в этот день не работает
	Slots        []Slot    // Слоты расписания, пусто для выходного дня
	ServiceTypes []string  // Каталог услуг
}

// Slot модель временного слота
type Slot struct {
	Time   types.TimeString // Время слота (например, "10:00")
	Booked int              // Количество активных записей на это время
}
