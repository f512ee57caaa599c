package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/integrations/bookingstore"
	"github.com/m04kA/SMC-RepairBooking/pkg/ptr"
	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

const (
	msgMissingSlot       = "Выберите дату и время"
	msgMissingContact    = "Укажите имя и телефон"
	msgSubmitted         = "Заявка отправлена!"
	msgSubmitFailed      = "Ошибка отправки заявки"
	msgSubmitFailedHint  = "Проверьте соединение и попробуйте ещё раз"
	msgBookedDescription = "Вы записаны на %s в %s"
)

// Form форма записи на ремонт
// Состояние принадлежит форме; мьютекс не удерживается во время сетевого запроса
type Form struct {
	store        BookingStore
	notifier     Notifier
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger

	mu      sync.Mutex
	state   State
	date    *time.Time
	time    types.TimeString
	details Details
}

// NewForm создает новую закрытую форму записи
func NewForm(
	store BookingStore,
	notifier Notifier,
	schedule domain.Schedule,
	logger Logger,
) *Form {
	return &Form{
		store:        store,
		notifier:     notifier,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		state:        StateClosed,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (f *Form) WithTimeProvider(tp TimeProvider) *Form {
	f.timeProvider = tp
	return f
}

// Open открывает диалог записи
// Ранее выбранные значения сохраняются, состояние восстанавливается по ним
func (f *Form) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateClosed {
		return
	}
	f.state = f.resumeState()
	f.logger.Info("Intake: dialog opened, state=%s", f.state)
}

// Close закрывает диалог без отправки; введённые значения не сбрасываются
func (f *Form) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return ErrSubmissionInProgress
	}
	f.state = StateClosed
	return nil
}

// IsDateSelectable можно ли выбрать дату в календаре
func (f *Form) IsDateSelectable(date time.Time) bool {
	return f.schedule.IsDateSelectable(date, f.timeProvider.Now())
}

// TimeSlots список слотов времени для выбора
func (f *Form) TimeSlots() []types.TimeString {
	return append([]types.TimeString(nil), f.schedule.TimeSlots...)
}

// SelectDate выбирает дату
// Дата в прошлом или в выходной отклоняется сразу, прежний выбор не меняется
func (f *Form) SelectDate(date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkEditable(); err != nil {
		return err
	}

	if !f.schedule.IsDateSelectable(date, f.timeProvider.Now()) {
		f.logger.Warn("Intake: date %s rejected", date.Format(domain.DateFormat))
		return fmt.Errorf("%w: %s", ErrDateUnavailable, date.Format(domain.DateFormat))
	}

	d := domain.DateOnly(date)
	f.date = &d
	f.state = f.resumeState()
	return nil
}

// SelectTime выбирает слот времени "HH:MM" из фиксированного списка
func (f *Form) SelectTime(value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkEditable(); err != nil {
		return err
	}

	slot, ok := f.schedule.FindTimeSlot(value)
	if !ok {
		f.logger.Warn("Intake: time slot %q rejected", value)
		return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, value)
	}

	f.time = slot
	f.state = f.resumeState()
	return nil
}

// SetDetails сохраняет контактные данные
// Обязательность имени и телефона проверяется только при отправке
func (f *Form) SetDetails(details Details) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkEditable(); err != nil {
		return err
	}

	if !f.schedule.HasServiceType(strings.TrimSpace(details.ServiceType)) {
		return fmt.Errorf("%w: %q", ErrUnknownServiceType, details.ServiceType)
	}

	f.details = details
	return nil
}

// Snapshot возвращает копию текущего состояния
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		State:   f.state,
		Time:    f.time,
		Details: f.details,
	}
	if f.date != nil {
		d := *f.date
		snap.Date = &d
	}
	return snap
}

// Submit проверяет форму и отправляет ровно один запрос на создание
//
// Порядок проверок: дата и время, затем имя и телефон. Первая ошибка прерывает отправку.
// Повторный вызов во время отправки возвращает ErrSubmissionInProgress без запроса.
// Успех: поля сбрасываются, форма закрывается. Ошибка: поля сохраняются, автоповтора нет.
func (f *Form) Submit(ctx context.Context) (*Confirmation, error) {
	f.mu.Lock()

	switch f.state {
	case StateClosed:
		f.mu.Unlock()
		return nil, ErrFormClosed
	case StateSubmitting:
		f.mu.Unlock()
		f.logger.Warn("Intake: duplicate submit ignored")
		return nil, ErrSubmissionInProgress
	}

	if err := f.validate(); err != nil {
		f.mu.Unlock()
		f.logger.Warn("Intake: validation failed: %v", err)
		if errors.Is(err, ErrMissingSlot) {
			f.notifier.Error(msgMissingSlot, "")
		} else {
			f.notifier.Error(msgMissingContact, "")
		}
		return nil, err
	}

	req := f.buildRequest()
	date, slot := *f.date, f.time
	f.state = StateSubmitting
	f.mu.Unlock()

	f.logger.Info("Intake: submitting booking date=%s time=%s", req.BookingDate, req.BookingTime)
	created, err := f.store.Create(ctx, req)

	if err != nil {
		f.mu.Lock()
		f.state = StateDetailsEntry
		f.mu.Unlock()

		f.logger.Error("Intake: failed to submit booking date=%s time=%s: %v", req.BookingDate, req.BookingTime, err)
		f.notifier.Error(msgSubmitFailed, msgSubmitFailedHint)
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	f.mu.Lock()
	f.reset()
	f.mu.Unlock()

	confirmation := &Confirmation{
		Date:        date,
		Time:        slot,
		Description: fmt.Sprintf(msgBookedDescription, date.Format(domain.DisplayDateFormat), slot),
	}
	if created != nil {
		confirmation.BookingID = created.ID
	}

	f.logger.Info("Intake: booking submitted id=%d date=%s time=%s", confirmation.BookingID, req.BookingDate, req.BookingTime)
	f.notifier.Success(msgSubmitted, confirmation.Description)
	return confirmation, nil
}

// validate проверки при отправке, вызывается под мьютексом
func (f *Form) validate() error {
	if f.date == nil || f.time.IsZero() {
		return ErrMissingSlot
	}
	if strings.TrimSpace(f.details.ClientName) == "" || strings.TrimSpace(f.details.ClientPhone) == "" {
		return ErrMissingContact
	}
	return nil
}

// buildRequest дата - календарная YYYY-MM-DD, время - строка слота HH:MM
func (f *Form) buildRequest() *bookingstore.CreateBookingRequest {
	return &bookingstore.CreateBookingRequest{
		ClientName:  strings.TrimSpace(f.details.ClientName),
		ClientPhone: strings.TrimSpace(f.details.ClientPhone),
		ClientEmail: ptr.NonEmpty(strings.TrimSpace(f.details.ClientEmail)),
		BookingDate: f.date.Format(domain.DateFormat),
		BookingTime: f.time.String(),
		ServiceType: ptr.NonEmpty(strings.TrimSpace(f.details.ServiceType)),
		Notes:       ptr.NonEmpty(strings.TrimSpace(f.details.Notes)),
	}
}

func (f *Form) reset() {
	f.state = StateClosed
	f.date = nil
	f.time = types.TimeString{}
	f.details = Details{}
}

func (f *Form) checkEditable() error {
	switch f.state {
	case StateClosed:
		return ErrFormClosed
	case StateSubmitting:
		return ErrSubmissionInProgress
	default:
		return nil
	}
}

// resumeState вычисляет шаг по уже выбранным значениям
func (f *Form) resumeState() State {
	switch {
	case f.date == nil:
		return StateDateSelecting
	case f.time.IsZero():
		return StateTimeSelecting
	default:
		return StateDetailsEntry
	}
}
