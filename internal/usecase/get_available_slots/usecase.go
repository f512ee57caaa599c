package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
)

// UseCase use case для получения слотов расписания на дату
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, schedule domain.Schedule, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает слоты расписания на дату с числом активных записей на каждый
// Занятость информационная: запись на занятый слот не запрещена
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", date.Format(domain.DateFormat))

	now := uc.timeProvider.Now()
	if domain.IsDateInPast(date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}

	resp := &Response{
		Date:         date,
		Open:         uc.schedule.IsDateSelectable(date, now),
		Slots:        []Slot{},
		ServiceTypes: uc.schedule.ServiceTypes,
	}

	if !resp.Open {
		uc.logger.Info("GetAvailableSlots: shop is closed on %s", date.Format(domain.DateFormat))
		return resp, nil
	}

	bookings, err := uc.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp.Slots = countBookedSlots(uc.schedule, bookings)

	uc.logger.Info("GetAvailableSlots: %d slots, %d bookings on %s",
		len(resp.Slots), len(bookings), date.Format(domain.DateFormat))
	return resp, nil
}

// countBookedSlots считает активные записи по слотам расписания
// Записи на время вне расписания не учитываются
func countBookedSlots(schedule domain.Schedule, bookings []*domain.Booking) []Slot {
	slots := make([]Slot, len(schedule.TimeSlots))
	for i, ts := range schedule.TimeSlots {
		slots[i] = Slot{Time: ts}
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		for i := range slots {
			if slots[i].Time.Equal(booking.BookingTime) {
				slots[i].Booked++
				break
			}
		}
	}

	return slots
}
