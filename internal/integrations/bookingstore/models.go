package bookingstore

// Booking модель бронирования в хранилище
type Booking struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2026-10-20"
	BookingTime string  `json:"bookingTime"` // "10:00"
	ServiceType *string `json:"serviceType,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// CreateBookingRequest тело POST запроса
type CreateBookingRequest struct {
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	BookingDate string  `json:"bookingDate"`
	BookingTime string  `json:"bookingTime"`
	ServiceType *string `json:"serviceType,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateBookingRequest тело PUT запроса - полная замена изменяемых полей
type UpdateBookingRequest struct {
	ID     int64   `json:"id"`
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// listResponse ответ GET
type listResponse struct {
	Bookings []Booking `json:"bookings"`
}

// createResponse ответ POST
type createResponse struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
}

// ErrorResponse модель ошибки хранилища
type ErrorResponse struct {
	Error string `json:"error"`
}
