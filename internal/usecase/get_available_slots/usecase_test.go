package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/pkg/logger"
	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// пятница
var testNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepository struct {
	bookings []*domain.Booking
	err      error
	calls    int
}

func (r *fakeRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	r.calls++
	return r.bookings, r.err
}

func newTestUseCase(repo *fakeRepository) *UseCase {
	uc := NewUseCase(repo, domain.DefaultSchedule(), logger.NewNop())
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func bookingAt(hhmm string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{BookingTime: types.MustTimeString(hhmm), Status: status}
}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeRepository{bookings: []*domain.Booking{
		bookingAt("10:00", domain.StatusPending),
		bookingAt("10:00", domain.StatusConfirmed),
		bookingAt("10:00", domain.StatusCancelled),
		bookingAt("14:00", domain.StatusCompleted),
		bookingAt("13:30", domain.StatusPending),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.True(t, resp.Open)
	require.Len(t, resp.Slots, len(domain.DefaultTimeSlots))

	booked := make(map[string]int)
	for _, s := range resp.Slots {
		booked[s.Time.String()] = s.Booked
	}
	assert.Equal(t, 2, booked["10:00"])
	assert.Equal(t, 0, booked["14:00"], "closed bookings do not hold a slot")
	assert.Equal(t, 0, booked["09:00"])
	assert.Equal(t, domain.DefaultServiceTypes, resp.ServiceTypes)
}

func TestUseCase_Execute_Today(t *testing.T) {
	uc := newTestUseCase(&fakeRepository{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testNow})

	require.NoError(t, err)
	assert.True(t, resp.Open)
	assert.Equal(t, "2026-10-16", resp.Date.Format(domain.DateFormat))
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	repo := &fakeRepository{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.False(t, resp.Open)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, repo.calls)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := newTestUseCase(&fakeRepository{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	uc = newTestUseCase(&fakeRepository{err: errors.New("db down")})
	_, err = uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, 3)})
	assert.ErrorIs(t, err, ErrInternal)
}
