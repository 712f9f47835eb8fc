package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/booking"
	"github.com/quickfix-app/quickfix/services/booking/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func bookingRows(b *models.Booking) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "requester_id", "technician_id", "service_skill",
		"scheduled_date", "scheduled_time", "address", "notes",
		"contact_email", "contact_phone", "status", "payment_status", "rating",
		"created_at", "updated_at",
	}).AddRow(
		b.ID, b.RequesterID, b.TechnicianID, b.ServiceSkill,
		b.Date, b.Time, b.Address, b.Notes,
		b.ContactEmail, b.ContactPhone, b.Status, b.PaymentStatus, b.Rating,
		b.CreatedAt, b.UpdatedAt,
	)
}

func sampleBooking() *models.Booking {
	now := time.Now()
	return &models.Booking{
		ID:            "booking-1",
		RequesterID:   "user-1",
		TechnicianID:  "tech-1",
		ServiceSkill:  "plumbing",
		Date:          "2026-09-01",
		Time:          "10:00",
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateBooking(context.Background(), sampleBooking())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestUpdateStatusCAS_Winner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	b := sampleBooking()
	b.Status = models.BookingStatusAccepted

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusAccepted, sqlmock.AnyArg(), b.ID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(b.ID).
		WillReturnRows(bookingRows(b))

	updated, err := repo.UpdateStatusCAS(context.Background(), b.ID, models.BookingStatusPending, models.BookingStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusCAS_LoserSeesConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	b := sampleBooking()
	// The concurrent winner already moved the row off Pending, so the CAS
	// update matches nothing while the booking still exists.
	b.Status = models.BookingStatusCancelled

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusAccepted, sqlmock.AnyArg(), b.ID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(b.ID).
		WillReturnRows(bookingRows(b))

	_, err := repo.UpdateStatusCAS(context.Background(), b.ID, models.BookingStatusPending, models.BookingStatusAccepted)
	assert.ErrorIs(t, err, booking.ErrStatusConflict)
}

func TestUpdateStatusCAS_UnknownBooking(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UpdateStatusCAS(context.Background(), "missing", models.BookingStatusPending, models.BookingStatusAccepted)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestAssignTechnician_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	b := sampleBooking()
	b.TechnicianID = "tech-2"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET technician_id")).
		WithArgs("tech-2", sqlmock.AnyArg(), b.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(b.ID).
		WillReturnRows(bookingRows(b))

	updated, err := repo.AssignTechnician(context.Background(), b.ID, "tech-2")
	require.NoError(t, err)
	assert.Equal(t, "tech-2", updated.TechnicianID)
}

func TestSetRated_OnlyOnce(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	b := sampleBooking()
	rated := 5.0
	b.Rating = &rated

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET rating")).
		WithArgs(4.0, sqlmock.AnyArg(), b.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(b.ID).
		WillReturnRows(bookingRows(b))

	err := repo.SetRated(context.Background(), b.ID, 4.0)
	assert.ErrorIs(t, err, booking.ErrAlreadyRated)
}

func TestListByTechnician(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	b := sampleBooking()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("tech-1").
		WillReturnRows(bookingRows(b))

	bookings, err := repo.ListByTechnician(context.Background(), "tech-1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, b.ID, bookings[0].ID)
}
