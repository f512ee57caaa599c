package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrShopClosed возвращается, когда мастерская не работает в указанную дату
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в список слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrUnknownServiceType возвращается, когда тип услуги не из каталога
	ErrUnknownServiceType = errors.New("create_booking: unknown service type")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
