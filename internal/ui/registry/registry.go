package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/integrations/bookingstore"
	"github.com/m04kA/SMC-RepairBooking/pkg/ptr"
)

const (
	msgLoadFailed        = "Ошибка загрузки записей"
	msgUpdated           = "Статус обновлен"
	msgUpdateFailed      = "Ошибка обновления"
	msgInvalidStatusHint = "Выберите статус из списка"
	msgConfirmDelete     = "Удалить запись?"
	msgDeleted           = "Запись удалена"
	msgDeleteFailed      = "Ошибка удаления"
)

// Registry клиент реестра бронирований для администратора
//
// Загруженный список - только кэш: он целиком заменяется при каждой загрузке
// и перезагружается после каждого изменения. Каждый запрос списка получает
// порядковый номер; ответ на устаревший запрос отбрасывается.
type Registry struct {
	store    BookingStore
	notifier Notifier
	logger   Logger

	mu       sync.Mutex
	filter   domain.StatusFilter
	bookings []domain.Booking
	loaded   bool
	seq      uint64
	inFlight int
	edit     *EditSurface
}

// NewRegistry создает реестр с фильтром "все"
func NewRegistry(store BookingStore, notifier Notifier, logger Logger) *Registry {
	return &Registry{
		store:    store,
		notifier: notifier,
		logger:   logger,
		filter:   domain.FilterAll,
	}
}

// List загружает бронирования по фильтру и делает его активным
// Пустой результат - нормальное пустое состояние. При ошибке прежний список остаётся.
func (r *Registry) List(ctx context.Context, filter domain.StatusFilter) error {
	if filter == "" {
		filter = domain.FilterAll
	}

	r.mu.Lock()
	r.seq++
	tag := r.seq
	r.filter = filter
	r.inFlight++
	r.mu.Unlock()

	status := ""
	if s, ok := filter.Status(); ok {
		status = string(s)
	}

	list, err := r.store.List(ctx, status)

	r.mu.Lock()
	r.inFlight--

	if tag != r.seq {
		latest := r.seq
		r.mu.Unlock()
		r.logger.Info("Registry: discarded stale list response filter=%s (request %d, latest %d)", filter, tag, latest)
		return nil
	}

	if err != nil {
		r.mu.Unlock()
		r.logger.Error("Registry: failed to load bookings filter=%s: %v", filter, err)
		r.notifier.Error(msgLoadFailed, "")
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	r.bookings = toDomainBookings(list)
	r.loaded = true
	loaded := len(r.bookings)
	r.mu.Unlock()

	r.logger.Info("Registry: loaded %d bookings filter=%s", loaded, filter)
	return nil
}

// Refresh перезагружает список с активным фильтром
func (r *Registry) Refresh(ctx context.Context) error {
	r.mu.Lock()
	filter := r.filter
	r.mu.Unlock()

	return r.List(ctx, filter)
}

// OpenEdit открывает форму редактирования для загруженного бронирования
func (r *Registry) OpenEdit(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			r.edit = editFromBooking(b)
			return nil
		}
	}
	return fmt.Errorf("%w: id=%d", ErrBookingNotLoaded, id)
}

// SetEditStatus меняет статус в открытой форме редактирования
func (r *Registry) SetEditStatus(status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.edit == nil {
		return ErrNoEditOpen
	}
	r.edit.Status = status
	return nil
}

// SetEditNotes меняет заметки в открытой форме редактирования
func (r *Registry) SetEditNotes(notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.edit == nil {
		return ErrNoEditOpen
	}
	r.edit.Notes = notes
	return nil
}

// CloseEdit закрывает форму редактирования без сохранения
func (r *Registry) CloseEdit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edit = nil
}

// SaveEdit отправляет значения из открытой формы редактирования
func (r *Registry) SaveEdit(ctx context.Context) error {
	r.mu.Lock()
	if r.edit == nil {
		r.mu.Unlock()
		return ErrNoEditOpen
	}
	edit := *r.edit
	r.mu.Unlock()

	return r.Update(ctx, edit.BookingID, edit.Status, ptr.NonEmpty(edit.Notes))
}

// Update заменяет статус и заметки бронирования
// Успех: форма редактирования закрывается, список перезагружается с активным фильтром.
// Ошибка: форма остаётся открытой с введёнными значениями.
func (r *Registry) Update(ctx context.Context, id int64, status domain.BookingStatus, notes *string) error {
	if !status.IsValid() {
		r.logger.Warn("Registry: update of booking id=%d rejected, invalid status %q", id, status)
		r.notifier.Error(msgUpdateFailed, msgInvalidStatusHint)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	err := r.store.Update(ctx, &bookingstore.UpdateBookingRequest{
		ID:     id,
		Status: string(status),
		Notes:  notes,
	})
	if err != nil {
		r.logger.Error("Registry: failed to update booking id=%d: %v", id, err)
		r.notifier.Error(msgUpdateFailed, "")
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}

	r.logger.Info("Registry: booking id=%d updated to status=%s", id, status)
	r.notifier.Success(msgUpdated, "")

	r.mu.Lock()
	if r.edit != nil && r.edit.BookingID == id {
		r.edit = nil
	}
	r.mu.Unlock()

	if err := r.Refresh(ctx); err != nil {
		r.logger.Warn("Registry: refresh after update failed: %v", err)
	}
	return nil
}

// Delete удаляет бронирование после явного подтверждения
// Без подтверждения запрос не отправляется. При ошибке локальное состояние не меняется.
func (r *Registry) Delete(ctx context.Context, id int64, confirmer Confirmer) error {
	if confirmer == nil || !confirmer.Confirm(msgConfirmDelete) {
		r.logger.Info("Registry: deletion of booking id=%d not confirmed", id)
		return ErrDeleteNotConfirmed
	}

	if err := r.store.Delete(ctx, id); err != nil {
		r.logger.Error("Registry: failed to delete booking id=%d: %v", id, err)
		r.notifier.Error(msgDeleteFailed, "")
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}

	r.logger.Info("Registry: booking id=%d deleted", id)
	r.notifier.Success(msgDeleted, "")

	if err := r.Refresh(ctx); err != nil {
		r.logger.Warn("Registry: refresh after delete failed: %v", err)
	}
	return nil
}

// Counts счётчики по статусам, вычисляются из загруженного списка при каждом вызове
func (r *Registry) Counts() domain.StatusCounts {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.CountByStatus(r.bookings)
}

// Filter активный фильтр
func (r *Registry) Filter() domain.StatusFilter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter
}

// View возвращает копию состояния для отображения
func (r *Registry) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := View{
		Filter:   r.filter,
		Bookings: append([]domain.Booking(nil), r.bookings...),
		Counts:   domain.CountByStatus(r.bookings),
		Loading:  r.inFlight > 0,
		Loaded:   r.loaded,
	}
	if r.edit != nil {
		e := *r.edit
		v.Edit = &e
	}
	return v
}
