package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RepairBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// List получает бронирования, опционально по статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings, status=%v", len(bookings), statusForLog(domainStatus))
	return models.FromDomainBookingList(bookings), nil
}

// Update заменяет статус и заметки бронирования
func (s *Service) Update(ctx context.Context, req *models.UpdateBookingRequest) (*models.UpdatedBookingResponse, error) {
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("Update: invalid status=%s for booking id=%d", req.Status, req.ID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	err = s.bookingRepo.UpdateStatusAndNotes(ctx, req.ID, status, req.Notes)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", req.ID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncBookingUpdated(string(status))
	s.logger.Info("Update: booking id=%d set to status=%s", req.ID, status)

	return &models.UpdatedBookingResponse{ID: req.ID, Status: string(status)}, nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncBookingDeleted()
	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

func statusForLog(status *domain.BookingStatus) string {
	if status == nil {
		return string(domain.FilterAll)
	}
	return string(*status)
}
