package list_bookings

import (
	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Пустой статус и "all" означают отсутствие фильтра
func ToServiceRequest(statusStr string) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}
	if statusStr != "" && statusStr != string(domain.FilterAll) {
		req.Status = &statusStr
	}
	return req
}
