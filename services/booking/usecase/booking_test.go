package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/booking"
	bookingmocks "github.com/quickfix-app/quickfix/services/booking/mocks"
	geomocks "github.com/quickfix-app/quickfix/services/geo/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	repo  *bookingmocks.MockBookingRepo
	gw    *bookingmocks.MockBookingGW
	geoUC *geomocks.MockGeoUC
	uc    booking.BookingUC
}

func setupUC(t *testing.T, strict bool) (*gomock.Controller, testDeps) {
	ctrl := gomock.NewController(t)
	cfg := &models.Config{
		Match:   models.MatchConfig{SearchRadiusKm: 15, CandidateLimit: 50, QueryTimeoutMs: 500},
		Booking: models.BookingConfig{StrictOrder: strict},
	}

	deps := testDeps{
		repo:  bookingmocks.NewMockBookingRepo(ctrl),
		gw:    bookingmocks.NewMockBookingGW(ctrl),
		geoUC: geomocks.NewMockGeoUC(ctrl),
	}
	deps.uc = NewBookingUC(cfg, deps.repo, deps.gw, deps.geoUC)
	return ctrl, deps
}

var (
	requester  = models.Actor{ID: "user-1", Role: models.RoleUser}
	technician = models.Actor{ID: "tech-1", Role: models.RoleTechnician}
	admin      = models.Actor{ID: "admin-1", Role: models.RoleAdmin}
)

func pendingBooking() *models.Booking {
	now := time.Now()
	return &models.Booking{
		ID:            "booking-1",
		RequesterID:   "user-1",
		TechnicianID:  "tech-1",
		ServiceSkill:  "plumbing",
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateBooking_MatchesNearestAvailable(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	origin := &models.Location{Latitude: 40.7138, Longitude: -74.0070}
	deps.geoUC.EXPECT().
		FindCandidates(gomock.Any(), *origin, "plumbing", 15.0, 1).
		Return([]models.MatchCandidate{{TechnicianID: "tech-1", DistanceKm: 0.14}}, nil)
	deps.repo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, "tech-1", b.TechnicianID)
			assert.Equal(t, models.BookingStatusPending, b.Status)
			assert.Equal(t, models.PaymentStatusUnpaid, b.PaymentStatus)
			return nil
		})
	deps.gw.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

	created, err := deps.uc.CreateBooking(context.Background(), &models.BookingRequest{
		RequesterID: "user-1",
		ServiceType: "Plumbing",
		Origin:      origin,
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-1", created.TechnicianID)
	assert.Equal(t, "plumbing", created.ServiceSkill)
}

func TestCreateBooking_FallsBackToRecencyTier(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	origin := &models.Location{Latitude: 40.7138, Longitude: -74.0070}
	deps.geoUC.EXPECT().
		FindCandidates(gomock.Any(), *origin, "electrical", 15.0, 1).
		Return(nil, nil)
	deps.geoUC.EXPECT().
		FindBySkill(gomock.Any(), "electrical", 1).
		Return([]string{"tech-2"}, nil)
	deps.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

	created, err := deps.uc.CreateBooking(context.Background(), &models.BookingRequest{
		RequesterID: "user-1",
		ServiceType: "Electrical Work",
		Origin:      origin,
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-2", created.TechnicianID)
}

func TestCreateBooking_NoMatchCreatesUnassigned(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	deps.geoUC.EXPECT().
		FindBySkill(gomock.Any(), "appliance", 1).
		Return(nil, nil)
	deps.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

	created, err := deps.uc.CreateBooking(context.Background(), &models.BookingRequest{
		RequesterID: "user-1",
		ServiceType: "appliance",
	})
	require.NoError(t, err)
	assert.Empty(t, created.TechnicianID)
	assert.Equal(t, models.BookingStatusPending, created.Status)
}

func TestCreateBooking_GeoFailureDegradesToUnassigned(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	origin := &models.Location{Latitude: 40.7138, Longitude: -74.0070}
	deps.geoUC.EXPECT().
		FindCandidates(gomock.Any(), *origin, "plumbing", 15.0, 1).
		Return(nil, context.DeadlineExceeded)
	deps.geoUC.EXPECT().
		FindBySkill(gomock.Any(), "plumbing", 1).
		Return(nil, context.DeadlineExceeded)
	deps.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

	created, err := deps.uc.CreateBooking(context.Background(), &models.BookingRequest{
		RequesterID: "user-1",
		ServiceType: "plumbing",
		Origin:      origin,
	})
	require.NoError(t, err, "matching failure must never fail creation")
	assert.Empty(t, created.TechnicianID)
}

func TestCreateBooking_PreselectedTechnicianSkipsMatching(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	deps.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

	created, err := deps.uc.CreateBooking(context.Background(), &models.BookingRequest{
		RequesterID:  "user-1",
		ServiceType:  "plumbing",
		TechnicianID: "tech-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-9", created.TechnicianID)
}

func TestCreateBooking_InvalidRequest(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	_, err := deps.uc.CreateBooking(context.Background(), &models.BookingRequest{RequesterID: "user-1"})
	assert.ErrorIs(t, err, booking.ErrInvalidRequest)

	_, err = deps.uc.CreateBooking(context.Background(), &models.BookingRequest{ServiceType: "plumbing"})
	assert.ErrorIs(t, err, booking.ErrInvalidRequest)

	_, err = deps.uc.CreateBooking(context.Background(), &models.BookingRequest{
		RequesterID: "user-1",
		ServiceType: "plumbing",
		Origin:      &models.Location{Latitude: 95, Longitude: 0},
	})
	assert.ErrorIs(t, err, booking.ErrInvalidRequest)
}

func TestChangeStatus_AssignedTechnicianAdvances(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	updated := *b
	updated.Status = models.BookingStatusAccepted

	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	deps.repo.EXPECT().
		UpdateStatusCAS(gomock.Any(), b.ID, models.BookingStatusPending, models.BookingStatusAccepted).
		Return(&updated, nil)
	deps.gw.EXPECT().PublishStatusChanged(gomock.Any(), &updated).Return(nil)

	result, err := deps.uc.ChangeStatus(context.Background(), technician, b.ID, models.BookingStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, result.Status)
}

func TestChangeStatus_UnassignedTechnicianForbidden(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	other := models.Actor{ID: "tech-9", Role: models.RoleTechnician}
	_, err := deps.uc.ChangeStatus(context.Background(), other, b.ID, models.BookingStatusAccepted)
	assert.ErrorIs(t, err, booking.ErrForbidden)
}

func TestChangeStatus_RequesterMayOnlyCancel(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	_, err := deps.uc.ChangeStatus(context.Background(), requester, b.ID, models.BookingStatusAccepted)
	assert.ErrorIs(t, err, booking.ErrForbidden)

	cancelled := *b
	cancelled.Status = models.BookingStatusCancelled
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	deps.repo.EXPECT().
		UpdateStatusCAS(gomock.Any(), b.ID, models.BookingStatusPending, models.BookingStatusCancelled).
		Return(&cancelled, nil)
	deps.gw.EXPECT().PublishStatusChanged(gomock.Any(), &cancelled).Return(nil)

	result, err := deps.uc.ChangeStatus(context.Background(), requester, b.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, result.Status)
}

func TestChangeStatus_TerminalRejected(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	b.Status = models.BookingStatusCompleted
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	_, err := deps.uc.ChangeStatus(context.Background(), admin, b.ID, models.BookingStatusCancelled)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestChangeStatus_StrictOrderRejectsSkip(t *testing.T) {
	ctrl, deps := setupUC(t, true)
	defer ctrl.Finish()

	b := pendingBooking()
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	_, err := deps.uc.ChangeStatus(context.Background(), admin, b.ID, models.BookingStatusCompleted)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestChangeStatus_ConflictSurfacesToCaller(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	deps.repo.EXPECT().
		UpdateStatusCAS(gomock.Any(), b.ID, models.BookingStatusPending, models.BookingStatusAccepted).
		Return(nil, booking.ErrStatusConflict)

	_, err := deps.uc.ChangeStatus(context.Background(), admin, b.ID, models.BookingStatusAccepted)
	assert.ErrorIs(t, err, booking.ErrStatusConflict)
}

func TestChangeStatus_NotFound(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	deps.repo.EXPECT().GetBooking(gomock.Any(), "missing").Return(nil, booking.ErrBookingNotFound)

	_, err := deps.uc.ChangeStatus(context.Background(), admin, "missing", models.BookingStatusAccepted)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestReassign_AdminOnly(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	_, err := deps.uc.Reassign(context.Background(), technician, "booking-1", "tech-2")
	assert.ErrorIs(t, err, booking.ErrForbidden)

	b := pendingBooking()
	reassigned := *b
	reassigned.TechnicianID = "tech-2"

	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	deps.repo.EXPECT().AssignTechnician(gomock.Any(), b.ID, "tech-2").Return(&reassigned, nil)
	deps.gw.EXPECT().PublishStatusChanged(gomock.Any(), &reassigned).Return(nil)

	result, err := deps.uc.Reassign(context.Background(), admin, b.ID, "tech-2")
	require.NoError(t, err)
	assert.Equal(t, "tech-2", result.TechnicianID)
}

func TestReassign_TerminalRejected(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	b.Status = models.BookingStatusCancelled
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	_, err := deps.uc.Reassign(context.Background(), admin, b.ID, "tech-2")
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestMarkPayment_CompletedWhileUnpaidIsLegal(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	// Payment is an independent axis: the booking completed unpaid and the
	// requester settles afterwards.
	b := pendingBooking()
	b.Status = models.BookingStatusCompleted
	paid := *b
	paid.PaymentStatus = models.PaymentStatusPaid

	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	deps.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), b.ID, models.PaymentStatusPaid).Return(&paid, nil)

	result, err := deps.uc.MarkPayment(context.Background(), requester, b.ID, models.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, result.PaymentStatus)
	assert.Equal(t, models.BookingStatusCompleted, result.Status)
}

func TestMarkPayment_RefundRules(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	b.PaymentStatus = models.PaymentStatusPaid

	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	_, err := deps.uc.MarkPayment(context.Background(), requester, b.ID, models.PaymentStatusRefunded)
	assert.ErrorIs(t, err, booking.ErrForbidden)

	refunded := *b
	refunded.PaymentStatus = models.PaymentStatusRefunded
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	deps.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), b.ID, models.PaymentStatusRefunded).Return(&refunded, nil)

	result, err := deps.uc.MarkPayment(context.Background(), admin, b.ID, models.PaymentStatusRefunded)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, result.PaymentStatus)
}

func TestMarkPayment_RejectsInvalidMoves(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	_, err := deps.uc.MarkPayment(context.Background(), admin, b.ID, models.PaymentStatusRefunded)
	assert.ErrorIs(t, err, booking.ErrInvalidPayment, "cannot refund an unpaid booking")

	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	_, err = deps.uc.MarkPayment(context.Background(), admin, b.ID, models.PaymentStatusUnpaid)
	assert.ErrorIs(t, err, booking.ErrInvalidPayment)
}

func TestRateBooking_FoldsIntoTechnicianSummary(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	b.Status = models.BookingStatusCompleted
	rating := 5.0
	rated := *b
	rated.Rating = &rating

	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	deps.repo.EXPECT().SetRated(gomock.Any(), b.ID, 5.0).Return(nil)
	deps.geoUC.EXPECT().AddRating(gomock.Any(), "tech-1", 5.0).Return(5.0, 1, nil)
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(&rated, nil)

	result, err := deps.uc.RateBooking(context.Background(), requester, b.ID, 5)
	require.NoError(t, err)
	require.NotNil(t, result.Rating)
	assert.Equal(t, 5.0, *result.Rating)
}

func TestRateBooking_RequiresCompletion(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

	_, err := deps.uc.RateBooking(context.Background(), requester, b.ID, 5)
	assert.ErrorIs(t, err, booking.ErrNotCompleted)
}

func TestListBookings_RoleDispatch(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	deps.repo.EXPECT().ListByRequester(gomock.Any(), "user-1").Return([]*models.Booking{}, nil)
	_, err := deps.uc.ListBookings(context.Background(), requester)
	assert.NoError(t, err)

	deps.repo.EXPECT().ListByTechnician(gomock.Any(), "tech-1").Return([]*models.Booking{}, nil)
	_, err = deps.uc.ListBookings(context.Background(), technician)
	assert.NoError(t, err)

	deps.repo.EXPECT().ListAll(gomock.Any()).Return([]*models.Booking{}, nil)
	_, err = deps.uc.ListBookings(context.Background(), admin)
	assert.NoError(t, err)
}

func TestGetBooking_OwnershipChecks(t *testing.T) {
	ctrl, deps := setupUC(t, false)
	defer ctrl.Finish()

	b := pendingBooking()

	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	_, err := deps.uc.GetBooking(context.Background(), requester, b.ID)
	assert.NoError(t, err)

	stranger := models.Actor{ID: "user-9", Role: models.RoleUser}
	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	_, err = deps.uc.GetBooking(context.Background(), stranger, b.ID)
	assert.ErrorIs(t, err, booking.ErrForbidden)

	deps.repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	_, err = deps.uc.GetBooking(context.Background(), admin, b.ID)
	assert.NoError(t, err)
}
