package registry

import "errors"

var (
	// ErrLoadFailed не удалось загрузить список, прежний список сохранён
	ErrLoadFailed = errors.New("registry: failed to load bookings")

	// ErrUpdateFailed хранилище не приняло изменение, форма редактирования остаётся открытой
	ErrUpdateFailed = errors.New("registry: failed to update booking")

	// ErrDeleteFailed хранилище не удалило запись, локальное состояние не менялось
	ErrDeleteFailed = errors.New("registry: failed to delete booking")

	// ErrDeleteNotConfirmed пользователь не подтвердил удаление
	ErrDeleteNotConfirmed = errors.New("registry: deletion not confirmed")

	// ErrInvalidStatus статус вне списка допустимых
	ErrInvalidStatus = errors.New("registry: invalid booking status")

	// ErrBookingNotLoaded бронирования нет в загруженном списке
	ErrBookingNotLoaded = errors.New("registry: booking is not in the loaded list")

	// ErrNoEditOpen форма редактирования не открыта
	ErrNoEditOpen = errors.New("registry: no booking is being edited")
)
