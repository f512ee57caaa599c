package registry

import (
	"time"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/integrations/bookingstore"
	"github.com/m04kA/SMC-RepairBooking/pkg/ptr"
	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// EditSurface открытая форма редактирования бронирования
type EditSurface struct {
	BookingID int64
	Status    domain.BookingStatus
	Notes     string
}

// View копия состояния реестра для отображения
type View struct {
	Filter   domain.StatusFilter
	Bookings []domain.Booking
	Counts   domain.StatusCounts
	Loading  bool
	Loaded   bool
	Edit     *EditSurface
}

// IsEmpty список загружен и пуст - показывается пустое состояние, не ошибка
func (v View) IsEmpty() bool {
	return v.Loaded && len(v.Bookings) == 0
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// toDomainBooking конвертирует запись хранилища
// Дата и время уже сохранённых записей не валидируются: что не разобралось, остаётся нулевым
func toDomainBooking(b bookingstore.Booking) domain.Booking {
	booking := domain.Booking{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ClientEmail: b.ClientEmail,
		ServiceType: b.ServiceType,
		Notes:       b.Notes,
		Status:      domain.BookingStatus(b.Status),
		CreatedAt:   parseTimestamp(b.CreatedAt),
		UpdatedAt:   parseTimestamp(b.UpdatedAt),
	}

	if d, err := time.Parse(domain.DateFormat, b.BookingDate); err == nil {
		booking.BookingDate = d
	} else if ts := parseTimestamp(b.BookingDate); !ts.IsZero() {
		booking.BookingDate = domain.DateOnly(ts)
	}

	if t, err := types.ParseStoredTimeString(b.BookingTime); err == nil {
		booking.BookingTime = t
	}

	return booking
}

func toDomainBookings(list []bookingstore.Booking) []domain.Booking {
	result := make([]domain.Booking, 0, len(list))
	for _, b := range list {
		result = append(result, toDomainBooking(b))
	}
	return result
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func editFromBooking(b domain.Booking) *EditSurface {
	return &EditSurface{
		BookingID: b.ID,
		Status:    b.Status,
		Notes:     ptr.Deref(b.Notes),
	}
}
