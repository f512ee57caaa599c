package bookingstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RepairBooking/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api/v1/bookings", 2*time.Second, logger.NewNop())
}

func TestClient_List(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"bookings": []map[string]interface{}{
				{"id": 7, "clientName": "Иван", "clientPhone": "+7 900", "bookingDate": "2026-10-20",
					"bookingTime": "10:00", "status": "confirmed", "createdAt": "2026-10-16T10:00:00Z"},
			},
		})
	})

	bookings, err := client.List(context.Background(), "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "status=confirmed", gotQuery)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(7), bookings[0].ID)
	assert.Equal(t, "confirmed", bookings[0].Status)

	_, err = client.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery, "no filter means no status param")
}

func TestClient_List_EmptyIsNotError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"bookings": null}`)
	})

	bookings, err := client.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestClient_List_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error": "db is down"}`)
	})

	_, err := client.List(context.Background(), "")
	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "db is down")
}

func TestClient_List_NonSuccessWithSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `{"bookings": []}`)
	})

	_, err := client.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_Create(t *testing.T) {
	var body map[string]interface{}
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success": true, "booking": {"id": 11, "clientName": "Анна", "bookingDate": "2026-10-20", "bookingTime": "14:00"}}`)
	})

	created, err := client.Create(context.Background(), &CreateBookingRequest{
		ClientName:  "Анна",
		ClientPhone: "+7 911 000-00-00",
		BookingDate: "2026-10-20",
		BookingTime: "14:00",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, 1, calls)

	assert.Equal(t, "2026-10-20", body["bookingDate"])
	assert.Equal(t, "14:00", body["bookingTime"])
	assert.NotContains(t, body, "clientEmail", "optional fields are omitted")
}

func TestClient_Create_UnparsableSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `OK`)
	})

	created, err := client.Create(context.Background(), &CreateBookingRequest{ClientName: "a", ClientPhone: "b"})
	assert.NoError(t, err)
	assert.Nil(t, created)
}

func TestClient_Update(t *testing.T) {
	var body UpdateBookingRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"success": true}`)
	})

	notes := "заменить экран"
	err := client.Update(context.Background(), &UpdateBookingRequest{ID: 3, Status: "completed", Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, int64(3), body.ID)
	assert.Equal(t, "completed", body.Status)
	require.NotNil(t, body.Notes)
	assert.Equal(t, notes, *body.Notes)
}

func TestClient_Delete(t *testing.T) {
	var gotID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotID = r.URL.Query().Get("id")
		_, _ = io.WriteString(w, `{"success": true}`)
	})

	require.NoError(t, client.Delete(context.Background(), 42))
	assert.Equal(t, "42", gotID)
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second, logger.NewNop())
	err := client.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTransport)
}
