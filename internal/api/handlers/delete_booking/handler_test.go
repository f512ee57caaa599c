package delete_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings"
	"github.com/m04kA/SMC-RepairBooking/pkg/logger"
)

type fakeService struct {
	deleted []int64
	err     error
}

func (s *fakeService) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodDelete, target, nil))
	return w
}

func TestHandler_Delete(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, "/api/v1/bookings?id=12")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, []int64{12}, svc.deleted)
}

func TestHandler_Delete_BadID(t *testing.T) {
	for _, target := range []string{"/api/v1/bookings", "/api/v1/bookings?id=abc", "/api/v1/bookings?id=0"} {
		svc := &fakeService{}

		w := serve(svc, target)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Empty(t, svc.deleted, target)
	}
}

func TestHandler_Delete_ServiceErrors(t *testing.T) {
	w := serve(&fakeService{err: bookings.ErrBookingNotFound}, "/api/v1/bookings?id=5")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"бронирование не найдено"}`, w.Body.String())

	w = serve(&fakeService{err: errors.New("db down")}, "/api/v1/bookings?id=5")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
