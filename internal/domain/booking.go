package domain

import (
	"time"

	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Statuses all known statuses in display order
var Statuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValid returns true if the status is one of the four known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a repair booking
type Booking struct {
	ID          int64
	ClientName  string
	ClientPhone string
	ClientEmail *string
	BookingDate time.Time
	BookingTime types.TimeString
	ServiceType *string
	Notes       *string
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still needs work
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
