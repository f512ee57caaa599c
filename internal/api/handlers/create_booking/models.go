package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-RepairBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName  string  `json:"clientName" validate:"required,max=255"`
	ClientPhone string  `json:"clientPhone" validate:"required,max=50"`
	ClientEmail *string `json:"clientEmail,omitempty" validate:"omitempty,max=255"`
	BookingDate string  `json:"bookingDate" validate:"required"` // "2026-10-20"
	BookingTime string  `json:"bookingTime" validate:"required"` // "10:00"
	ServiceType *string `json:"serviceType,omitempty"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// CreatedBooking краткие данные созданного бронирования
type CreatedBooking struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success bool            `json:"success"`
	Booking *CreatedBooking `json:"booking"`
}

var (
	errInvalidDate = errors.New("invalid bookingDate")
	errInvalidTime = errors.New("invalid bookingTime")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Date:        bookingDate,
		Time:        bookingTime,
		ServiceType: r.ServiceType,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		Booking: &CreatedBooking{
			ID:          resp.ID,
			ClientName:  resp.ClientName,
			BookingDate: resp.BookingDate.Format(domain.DateFormat),
			BookingTime: resp.BookingTime.String(),
			Status:      resp.Status,
			CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
