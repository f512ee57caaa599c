package intake

import (
	"time"

	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// State состояние формы записи
type State int

const (
	StateClosed State = iota
	StateDateSelecting
	StateTimeSelecting
	StateDetailsEntry
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateDateSelecting:
		return "date_selecting"
	case StateTimeSelecting:
		return "time_selecting"
	case StateDetailsEntry:
		return "details_entry"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Details контактные данные и пожелания клиента
type Details struct {
	ClientName  string
	ClientPhone string
	ClientEmail string
	ServiceType string
	Notes       string
}

// Snapshot копия состояния формы для отображения
type Snapshot struct {
	State   State
	Date    *time.Time
	Time    types.TimeString
	Details Details
}

// Confirmation результат успешной отправки
type Confirmation struct {
	BookingID   int64 // 0, если хранилище не вернуло созданную запись
	Date        time.Time
	Time        types.TimeString
	Description string
}
