package update_booking

import (
	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model
// Notes полностью заменяет заметки, отсутствие поля очищает их
type UpdateBookingRequest struct {
	ID     int64   `json:"id" validate:"gt=0"`
	Status string  `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateBookingResponse HTTP response model
type UpdateBookingResponse struct {
	Success bool                           `json:"success"`
	Booking *models.UpdatedBookingResponse `json:"booking"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		ID:     r.ID,
		Status: r.Status,
		Notes:  r.Notes,
	}
}
