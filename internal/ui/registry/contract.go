package registry

import (
	"context"

	"github.com/m04kA/SMC-RepairBooking/internal/integrations/bookingstore"
)

// BookingStore интерфейс клиента хранилища бронирований
type BookingStore interface {
	List(ctx context.Context, status string) ([]bookingstore.Booking, error)
	Update(ctx context.Context, req *bookingstore.UpdateBookingRequest) error
	Delete(ctx context.Context, id int64) error
}

// Notifier интерфейс уведомлений пользователя
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

// Confirmer запрашивает у пользователя явное подтверждение
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc адаптер функции к Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm вызывает функцию
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
