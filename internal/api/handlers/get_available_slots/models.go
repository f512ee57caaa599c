package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-RepairBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string          `json:"date"`
	Open         bool            `json:"open"`
	Slots        []AvailableSlot `json:"slots"`
	ServiceTypes []string        `json:"serviceTypes"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time   string `json:"time"`
	Booked int    `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:   slot.Time.String(),
			Booked: slot.Booked,
		}
	}

	return &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Open:         resp.Open,
		Slots:        slots,
		ServiceTypes: resp.ServiceTypes,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}
