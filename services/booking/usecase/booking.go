package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/booking"
	"github.com/quickfix-app/quickfix/services/geo"
	"github.com/quickfix-app/quickfix/services/skills"
)

type bookingUC struct {
	cfg         *models.Config
	bookingRepo booking.BookingRepo
	bookingGW   booking.BookingGW
	geoUC       geo.GeoUC
	matcher     *Matcher
}

// NewBookingUC creates the booking use case
func NewBookingUC(cfg *models.Config, bookingRepo booking.BookingRepo, bookingGW booking.BookingGW, geoUC geo.GeoUC) booking.BookingUC {
	return &bookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		geoUC:       geoUC,
		matcher:     NewMatcher(cfg, geoUC),
	}
}

// CreateBooking persists a new booking in Pending. When no technician was
// pre-selected the matcher runs, but its outcome never blocks creation:
// an unmatched booking is created unassigned.
func (uc *bookingUC) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	if req.RequesterID == "" {
		return nil, booking.ErrInvalidRequest
	}
	if req.ServiceType == "" && req.TechnicianID == "" {
		return nil, booking.ErrInvalidRequest
	}
	if req.Origin != nil && !req.Origin.Valid() {
		return nil, booking.ErrInvalidRequest
	}

	skill := skills.Normalize(req.ServiceType)

	technicianID := req.TechnicianID
	if technicianID == "" {
		if matched, ok := uc.matcher.AssignTechnician(ctx, skill, req.Origin); ok {
			technicianID = matched
		} else {
			logger.Info("No technician matchable, creating unassigned booking",
				logger.String("skill", skill))
		}
	}

	now := time.Now()
	b := &models.Booking{
		ID:            uuid.New().String(),
		RequesterID:   req.RequesterID,
		TechnicianID:  technicianID,
		ServiceSkill:  skill,
		Date:          req.Date,
		Time:          req.Time,
		Address:       req.Address,
		Notes:         req.Notes,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.bookingRepo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.publishCreated(ctx, b)
	return b, nil
}

// GetBooking returns the booking after an ownership check: requesters see
// their own bookings, technicians their assigned ones, admins everything.
func (uc *bookingUC) GetBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error) {
	b, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canView(actor, b) {
		return nil, booking.ErrForbidden
	}
	return b, nil
}

// ChangeStatus applies a status transition under compare-and-set. Of two
// concurrent callers exactly one wins; the loser gets ErrStatusConflict.
func (uc *bookingUC) ChangeStatus(ctx context.Context, actor models.Actor, bookingID string, target models.BookingStatus) (*models.Booking, error) {
	b, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := authorizeTransition(actor, b, target); err != nil {
		return nil, err
	}
	if err := booking.CanTransition(b.Status, target, uc.cfg.Booking.StrictOrder); err != nil {
		return nil, err
	}

	updated, err := uc.bookingRepo.UpdateStatusCAS(ctx, bookingID, b.Status, target)
	if err != nil {
		return nil, err
	}

	uc.publishStatusChanged(ctx, updated)
	return updated, nil
}

// Reassign is an administrative override of the resolved technician. It
// is legal at any time before the booking reaches a terminal state.
func (uc *bookingUC) Reassign(ctx context.Context, actor models.Actor, bookingID, technicianID string) (*models.Booking, error) {
	if actor.Role != models.RoleAdmin {
		return nil, booking.ErrForbidden
	}
	if technicianID == "" {
		return nil, booking.ErrInvalidRequest
	}

	b, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, booking.ErrInvalidTransition
	}

	updated, err := uc.bookingRepo.AssignTechnician(ctx, bookingID, technicianID)
	if err != nil {
		return nil, err
	}

	uc.publishStatusChanged(ctx, updated)
	return updated, nil
}

// MarkPayment moves the payment axis. Payment status is orthogonal to the
// lifecycle status; completing while unpaid is not an error. unpaid goes
// to paid (requester or admin), paid goes to refunded (admin only).
func (uc *bookingUC) MarkPayment(ctx context.Context, actor models.Actor, bookingID string, status models.PaymentStatus) (*models.Booking, error) {
	b, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.PaymentStatusPaid:
		if actor.Role != models.RoleAdmin && actor.ID != b.RequesterID {
			return nil, booking.ErrForbidden
		}
		if b.PaymentStatus != models.PaymentStatusUnpaid {
			return nil, booking.ErrInvalidPayment
		}
	case models.PaymentStatusRefunded:
		if actor.Role != models.RoleAdmin {
			return nil, booking.ErrForbidden
		}
		if b.PaymentStatus != models.PaymentStatusPaid {
			return nil, booking.ErrInvalidPayment
		}
	default:
		return nil, booking.ErrInvalidPayment
	}

	return uc.bookingRepo.UpdatePaymentStatus(ctx, bookingID, status)
}

// RateBooking records the requester's one-time rating of a completed
// booking and folds it into the technician's rating summary.
func (uc *bookingUC) RateBooking(ctx context.Context, actor models.Actor, bookingID string, rating float64) (*models.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, geo.ErrInvalidRating
	}

	b, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && actor.ID != b.RequesterID {
		return nil, booking.ErrForbidden
	}
	if b.Status != models.BookingStatusCompleted {
		return nil, booking.ErrNotCompleted
	}
	if b.TechnicianID == "" {
		return nil, booking.ErrInvalidRequest
	}

	if err := uc.bookingRepo.SetRated(ctx, bookingID, rating); err != nil {
		return nil, err
	}

	if _, _, err := uc.geoUC.AddRating(ctx, b.TechnicianID, rating); err != nil {
		// The booking-side rating is already committed; the summary will
		// drift until the next successful fold.
		logger.Error("Failed to update technician rating summary",
			logger.String("technician_id", b.TechnicianID),
			logger.Err(err))
	}

	return uc.bookingRepo.GetBooking(ctx, bookingID)
}

// ListBookings returns the bookings visible to the actor
func (uc *bookingUC) ListBookings(ctx context.Context, actor models.Actor) ([]*models.Booking, error) {
	switch actor.Role {
	case models.RoleAdmin:
		return uc.bookingRepo.ListAll(ctx)
	case models.RoleTechnician:
		return uc.bookingRepo.ListByTechnician(ctx, actor.ID)
	default:
		return uc.bookingRepo.ListByRequester(ctx, actor.ID)
	}
}

func (uc *bookingUC) publishCreated(ctx context.Context, b *models.Booking) {
	if err := uc.bookingGW.PublishBookingCreated(ctx, b); err != nil {
		logger.Error("Failed to publish booking created event",
			logger.String("booking_id", b.ID),
			logger.Err(err))
	}
}

func (uc *bookingUC) publishStatusChanged(ctx context.Context, b *models.Booking) {
	if err := uc.bookingGW.PublishStatusChanged(ctx, b); err != nil {
		logger.Error("Failed to publish booking status event",
			logger.String("booking_id", b.ID),
			logger.Err(err))
	}
}

func canView(actor models.Actor, b *models.Booking) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleTechnician:
		return actor.ID == b.TechnicianID
	default:
		return actor.ID == b.RequesterID
	}
}

// authorizeTransition checks who may request which status. Admins may do
// anything; the assigned technician drives the work statuses; requesters
// may only cancel their own booking.
func authorizeTransition(actor models.Actor, b *models.Booking, target models.BookingStatus) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleTechnician:
		if actor.ID != b.TechnicianID {
			return booking.ErrForbidden
		}
		return nil
	default:
		if actor.ID != b.RequesterID || target != models.BookingStatusCancelled {
			return booking.ErrForbidden
		}
		return nil
	}
}
