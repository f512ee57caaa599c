package update_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings"
	"github.com/m04kA/SMC-RepairBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-RepairBooking/pkg/logger"
)

type fakeService struct {
	got *models.UpdateBookingRequest
	err error
}

func (s *fakeService) Update(ctx context.Context, req *models.UpdateBookingRequest) (*models.UpdatedBookingResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.UpdatedBookingResponse{ID: req.ID, Status: req.Status}, nil
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/v1/bookings", strings.NewReader(body))
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandler_Update(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, `{"id":5,"status":"completed","notes":"готово"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"booking":{"id":5,"status":"completed"}}`, w.Body.String())
	require.NotNil(t, svc.got.Notes)
	assert.Equal(t, "готово", *svc.got.Notes)
}

func TestHandler_Update_AbsentNotesClears(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, `{"id":5,"status":"cancelled"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.got.Notes)
}

func TestHandler_Update_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"broken json", `{`, `{"error":"некорректное тело запроса"}`},
		{"missing id", `{"status":"confirmed"}`, `{"error":"не указан ID бронирования"}`},
		{"unknown status", `{"id":1,"status":"done"}`, `{"error":"status: одно из: pending, confirmed, completed, cancelled"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}

			w := serve(svc, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			assert.Nil(t, svc.got)
		})
	}
}

func TestHandler_Update_ServiceErrors(t *testing.T) {
	w := serve(&fakeService{err: bookings.ErrBookingNotFound}, `{"id":99,"status":"confirmed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(&fakeService{err: errors.New("db down")}, `{"id":1,"status":"confirmed"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
