package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/pkg/logger"
	"github.com/m04kA/SMC-RepairBooking/pkg/ptr"
	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// пятница
var testNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepository struct {
	created *domain.Booking
	err     error
}

func (r *fakeRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	booking.ID = 101
	booking.CreatedAt = testNow
	r.created = booking
	return booking, nil
}

type fakeMetrics struct{ created int }

func (m *fakeMetrics) IncBookingCreated() { m.created++ }

func newTestUseCase(repo *fakeRepository) (*UseCase, *fakeMetrics) {
	m := &fakeMetrics{}
	uc := NewUseCase(repo, domain.DefaultSchedule(), m, logger.NewNop())
	uc.timeProvider = fixedTime{now: testNow}
	return uc, m
}

func validRequest() *Request {
	return &Request{
		ClientName:  "  Иван Петров ",
		ClientPhone: "+7 (999) 123-45-67",
		ClientEmail: ptr.Ptr(""),
		Date:        time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), // понедельник
		Time:        types.MustTimeString("10:00"),
		ServiceType: ptr.Ptr("Ремонт ноутбуков"),
		Notes:       ptr.Ptr("не включается"),
	}
}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeRepository{}
	uc, m := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "10:00", resp.BookingTime.String())
	assert.Equal(t, 1, m.created)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Иван Петров", repo.created.ClientName)
	assert.Nil(t, repo.created.ClientEmail, "blank email stored as NULL")
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestUseCase_Execute_TodayIsAllowed(t *testing.T) {
	uc, _ := newTestUseCase(&fakeRepository{})
	req := validRequest()
	req.Date = testNow

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"blank name", func(r *Request) { r.ClientName = "   " }, ErrInvalidInput},
		{"blank phone", func(r *Request) { r.ClientPhone = "" }, ErrInvalidInput},
		{"long name", func(r *Request) { r.ClientName = strings.Repeat("я", domain.MaxClientNameLength+1) }, ErrInvalidInput},
		{"long notes", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) }, ErrInvalidInput},
		{"no date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"no time", func(r *Request) { r.Time = types.TimeString{} }, ErrInvalidInput},
		{"past date", func(r *Request) { r.Date = testNow.AddDate(0, 0, -1) }, ErrInvalidDate},
		{"sunday", func(r *Request) { r.Date = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC) }, ErrShopClosed},
		{"lunch hour", func(r *Request) { r.Time = types.MustTimeString("13:00") }, ErrInvalidTimeSlot},
		{"unknown service", func(r *Request) { r.ServiceType = ptr.Ptr("Ремонт автомобилей") }, ErrUnknownServiceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			uc, m := newTestUseCase(repo)
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.created)
			assert.Zero(t, m.created)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	uc, m := newTestUseCase(&fakeRepository{err: errors.New("insert failed")})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, m.created)
}
