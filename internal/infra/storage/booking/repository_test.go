package booking

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/pkg/ptr"
	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO bookings (client_name,client_phone,client_email,booking_date,booking_time,service_type,notes,status) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at, updated_at",
	)).
		WithArgs("Иван", "+7 900 000-00-00", nil, sqlmock.AnyArg(), "10:00", "Ремонт ПК", nil, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	booking := &domain.Booking{
		ClientName:  "Иван",
		ClientPhone: "+7 900 000-00-00",
		BookingDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		BookingTime: types.MustTimeString("10:00"),
		ServiceType: ptr.Ptr("Ремонт ПК"),
		Status:      domain.StatusPending,
	}

	created, err := repo.Create(context.Background(), booking)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DBError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Booking{Status: domain.StatusPending})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)
	created := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, client_name, client_phone, client_email, booking_date, booking_time, service_type, notes, status, created_at, updated_at FROM bookings ORDER BY booking_date DESC, booking_time DESC",
	)).
		WillReturnRows(bookingRows().
			AddRow(int64(2), "Мария", "+7 911", "m@example.com", time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), "14:00:00", nil, nil, "confirmed", created, created).
			AddRow(int64(1), "Иван", "+7 900", nil, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), "10:00:00", "Ремонт ПК", "без зарядки", "pending", created, nil))

	bookings, err := repo.List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, int64(2), bookings[0].ID)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	require.NotNil(t, bookings[0].ClientEmail)
	assert.Equal(t, "m@example.com", *bookings[0].ClientEmail)
	assert.Nil(t, bookings[0].Notes)
	assert.Equal(t, "14:00", bookings[0].BookingTime.String())

	assert.Nil(t, bookings[1].ClientEmail)
	require.NotNil(t, bookings[1].Notes)
	assert.Equal(t, "без зарядки", *bookings[1].Notes)
	assert.True(t, bookings[1].UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_ByStatus(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE status = $1 ORDER BY booking_date DESC, booking_time DESC")).
		WithArgs("completed").
		WillReturnRows(bookingRows())

	bookings, err := repo.List(context.Background(), ptr.Ptr(domain.StatusCompleted))

	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatusAndNotes(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE bookings SET status = $1, notes = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3 RETURNING id",
	)).
		WithArgs("completed", "готово", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.UpdateStatusAndNotes(context.Background(), 7, domain.StatusCompleted, ptr.Ptr("готово"))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatusAndNotes_ClearsNotes(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("UPDATE bookings").
		WithArgs("cancelled", nil, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.UpdateStatusAndNotes(context.Background(), 7, domain.StatusCancelled, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatusAndNotes_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("UPDATE bookings").WillReturnError(sql.ErrNoRows)

	err := repo.UpdateStatusAndNotes(context.Background(), 99, domain.StatusConfirmed, nil)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByDate(t *testing.T) {
	repo, mock := newMockRepository(t)
	created := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE booking_date = $1 ORDER BY booking_time ASC")).
		WithArgs("2026-10-20").
		WillReturnRows(bookingRows().
			AddRow(int64(1), "Иван", "+7 900", nil, day, "10:00:00", nil, nil, "pending", created, created))

	bookings, err := repo.ListByDate(context.Background(), day)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "10:00", bookings[0].BookingTime.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
