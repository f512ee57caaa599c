package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента
	ClientEmail *string          // Email (опционально)
	Date        time.Time        // Дата бронирования (без времени)
	Time        types.TimeString // Время слота (например, "10:00")
	ServiceType *string          // Тип услуги (опционально)
	Notes       *string          // Описание проблемы (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	ClientName  string
	BookingDate time.Time
	BookingTime types.TimeString
	Status      string
	CreatedAt   time.Time
}
