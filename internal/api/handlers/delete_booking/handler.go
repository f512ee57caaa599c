package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RepairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings"
)

const (
	msgMissingBookingID = "не указан ID бронирования"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings?id={id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		h.logger.Warn("DELETE /bookings - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("DELETE /bookings - Invalid booking ID: %q", idStr)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /bookings - Failed to delete booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings - Booking deleted successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, handlers.SuccessResponse{Success: true})
}
