package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     domain.Schedule
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule domain.Schedule,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Новое бронирование всегда создаётся в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateBooking: date=%s, time=%s, service=%v",
		req.Date.Format(domain.DateFormat), req.Time, serviceForLog(req.ServiceType))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка по расписанию мастерской
	if err := validateSchedule(uc.schedule, req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: schedule check failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем бронирование
	booking := &domain.Booking{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		BookingDate: domain.DateOnly(req.Date),
		BookingTime: req.Time,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
		Status:      domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return &Response{
		ID:          created.ID,
		ClientName:  created.ClientName,
		BookingDate: created.BookingDate,
		BookingTime: created.BookingTime,
		Status:      string(created.Status),
		CreatedAt:   created.CreatedAt,
	}, nil
}

func serviceForLog(serviceType *string) string {
	if serviceType == nil {
		return "-"
	}
	return *serviceType
}
