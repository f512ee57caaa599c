package intake

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation базовая ошибка локальной валидации, до сети такие ошибки не доходят
	ErrValidation = errors.New("intake: validation failed")

	// ErrMissingSlot не выбраны дата и/или время
	ErrMissingSlot = fmt.Errorf("%w: date and time must be selected", ErrValidation)

	// ErrMissingContact не заполнены имя или телефон
	ErrMissingContact = fmt.Errorf("%w: client name and phone are required", ErrValidation)

	// ErrDateUnavailable дата в прошлом или в выходной день
	ErrDateUnavailable = errors.New("intake: date is not available for booking")

	// ErrUnknownTimeSlot время не входит в список слотов
	ErrUnknownTimeSlot = errors.New("intake: unknown time slot")

	// ErrUnknownServiceType неизвестный тип услуги
	ErrUnknownServiceType = errors.New("intake: unknown service type")

	// ErrFormClosed действие над закрытой формой
	ErrFormClosed = errors.New("intake: form is closed")

	// ErrSubmissionInProgress заявка уже отправляется, повторная отправка игнорируется
	ErrSubmissionInProgress = errors.New("intake: submission already in progress")

	// ErrSubmitFailed хранилище не приняло заявку, поля формы сохранены
	ErrSubmitFailed = errors.New("intake: failed to send booking")
)
