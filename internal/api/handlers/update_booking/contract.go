package update_booking

import (
	"context"

	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings/models"
)

type BookingService interface {
	Update(ctx context.Context, req *models.UpdateBookingRequest) (*models.UpdatedBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
