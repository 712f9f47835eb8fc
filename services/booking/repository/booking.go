package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/booking"
)

// BookingRepo persists bookings in Postgres
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `
	id, requester_id, technician_id, service_skill,
	scheduled_date, scheduled_time, address, notes,
	contact_email, contact_phone, status, payment_status, rating,
	created_at, updated_at
`

// CreateBooking inserts a new booking
func (r *BookingRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, requester_id, technician_id, service_skill,
			scheduled_date, scheduled_time, address, notes,
			contact_email, contact_phone, status, payment_status,
			created_at, updated_at
		) VALUES (
			:id, :requester_id, :technician_id, :service_skill,
			:scheduled_date, :scheduled_time, :address, :notes,
			:contact_email, :contact_phone, :status, :payment_status,
			:created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by id
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b models.Booking
	if err := r.db.GetContext(ctx, &b, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

// UpdateStatusCAS moves the booking from expected to target only if the
// stored status still equals expected. The WHERE clause on the current
// status is what serializes concurrent transitions: of two simultaneous
// callers, exactly one matches the row and the other observes a conflict.
func (r *BookingRepo) UpdateStatusCAS(ctx context.Context, bookingID string, expected, target models.BookingStatus) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, target, time.Now(), bookingID, expected)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// Either the id is unknown or another writer got there first.
		if _, getErr := r.GetBooking(ctx, bookingID); getErr != nil {
			return nil, getErr
		}
		return nil, booking.ErrStatusConflict
	}

	return r.GetBooking(ctx, bookingID)
}

// AssignTechnician sets the resolved technician reference
func (r *BookingRepo) AssignTechnician(ctx context.Context, bookingID, technicianID string) (*models.Booking, error) {
	query := `UPDATE bookings SET technician_id = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, technicianID, time.Now(), bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign technician: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, booking.ErrBookingNotFound
	}

	return r.GetBooking(ctx, bookingID)
}

// UpdatePaymentStatus sets the payment status axis
func (r *BookingRepo) UpdatePaymentStatus(ctx context.Context, bookingID string, status models.PaymentStatus) (*models.Booking, error) {
	query := `UPDATE bookings SET payment_status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, booking.ErrBookingNotFound
	}

	return r.GetBooking(ctx, bookingID)
}

// SetRated records the requester's rating only once per booking
func (r *BookingRepo) SetRated(ctx context.Context, bookingID string, rating float64) error {
	query := `UPDATE bookings SET rating = $1, updated_at = $2 WHERE id = $3 AND rating IS NULL`

	result, err := r.db.ExecContext(ctx, query, rating, time.Now(), bookingID)
	if err != nil {
		return fmt.Errorf("failed to set booking rating: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		if _, getErr := r.GetBooking(ctx, bookingID); getErr != nil {
			return getErr
		}
		return booking.ErrAlreadyRated
	}
	return nil
}

// ListByRequester returns the requester's bookings, newest first
func (r *BookingRepo) ListByRequester(ctx context.Context, requesterID string) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE requester_id = $1 ORDER BY created_at DESC`

	bookings := []*models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, requesterID); err != nil {
		return nil, fmt.Errorf("failed to list bookings by requester: %w", err)
	}
	return bookings, nil
}

// ListAll returns every booking, newest first. Admin surface only.
func (r *BookingRepo) ListAll(ctx context.Context) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	bookings := []*models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ListByTechnician returns the technician's assigned bookings, newest first
func (r *BookingRepo) ListByTechnician(ctx context.Context, technicianID string) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE technician_id = $1 ORDER BY created_at DESC`

	bookings := []*models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, technicianID); err != nil {
		return nil, fmt.Errorf("failed to list bookings by technician: %w", err)
	}
	return bookings, nil
}
