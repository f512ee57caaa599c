package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RepairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingBookingID   = "не указан ID бронирования"
	msgInvalidStatus      = "некорректный статус"
	msgNotFound           = "бронирование не найдено"
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

// Handle PUT /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ID <= 0 {
		h.logger.Warn("PUT /bookings - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /bookings - Validation failed: booking_id=%d, %v", req.ID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings - Booking not found: booking_id=%d", req.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus), errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /bookings - Invalid input: booking_id=%d, %v", req.ID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /bookings - Failed to update booking: booking_id=%d, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings - Booking updated successfully: booking_id=%d, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, &UpdateBookingResponse{Success: true, Booking: result})
}
