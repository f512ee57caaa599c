package intake

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RepairBooking/internal/integrations/bookingstore"
)

// BookingStore интерфейс клиента хранилища бронирований
type BookingStore interface {
	Create(ctx context.Context, req *bookingstore.CreateBookingRequest) (*bookingstore.Booking, error)
}

// Notifier интерфейс уведомлений пользователя
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
