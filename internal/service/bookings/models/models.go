package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateBookingRequest запрос на замену статуса и заметок
// Notes == nil очищает заметки
type UpdateBookingRequest struct {
	ID     int64   `json:"id"`
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2026-10-20"
	BookingTime string  `json:"bookingTime"` // "10:00"
	ServiceType *string `json:"serviceType,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`

	CreatedAt string `json:"createdAt"`           // ISO 8601
	UpdatedAt string `json:"updatedAt,omitempty"` // ISO 8601
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// UpdatedBookingResponse краткий ответ после обновления
type UpdatedBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ClientEmail: b.ClientEmail,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		BookingTime: b.BookingTime.String(),
		ServiceType: b.ServiceType,
		Notes:       b.Notes,
		Status:      string(b.Status),
		CreatedAt:   formatTimestamp(b.CreatedAt),
		UpdatedAt:   formatTimestamp(b.UpdatedAt),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
// Пустой список сериализуется как [], а не null
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
