package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RepairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings"
)

const (
	msgInvalidStatus = "некорректный статус"
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

// Handle GET /api/v1/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	statusStr := r.URL.Query().Get("status")

	result, err := h.service.List(r.Context(), ToServiceRequest(statusStr))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status: %q", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: status=%q, error=%v", statusStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: status=%q, count=%d", statusStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
