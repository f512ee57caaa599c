package bookings

import (
	"context"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatusAndNotes(ctx context.Context, id int64, status domain.BookingStatus, notes *string) error
	Delete(ctx context.Context, id int64) error
}

// Metrics интерфейс счётчиков изменений
type Metrics interface {
	IncBookingUpdated(status string)
	IncBookingDeleted()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
