package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/pkg/ptr"
)

// normalizeRequest обрезает пробелы, пустые опциональные поля становятся nil
func normalizeRequest(req *Request) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientPhone = strings.TrimSpace(req.ClientPhone)
	req.ClientEmail = trimOptional(req.ClientEmail)
	req.ServiceType = trimOptional(req.ServiceType)
	req.Notes = trimOptional(req.Notes)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr.NonEmpty(strings.TrimSpace(*s))
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is longer than %d", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.ClientPhone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.ClientPhone) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: clientPhone is longer than %d", ErrInvalidInput, domain.MaxClientPhoneLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время указано
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	return nil
}

// validateSchedule повторяет проверки формы записи: дата, время и услуга из расписания
func validateSchedule(schedule domain.Schedule, req *Request, now time.Time) error {
	if domain.IsDateInPast(req.Date, now) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	if req.Date.Weekday() == schedule.ClosedWeekday {
		return fmt.Errorf("%w: %s", ErrShopClosed, req.Date.Weekday())
	}

	if !schedule.HasTimeSlot(req.Time) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.Time)
	}

	if req.ServiceType != nil && !schedule.HasServiceType(*req.ServiceType) {
		return fmt.Errorf("%w: %s", ErrUnknownServiceType, *req.ServiceType)
	}

	return nil
}
