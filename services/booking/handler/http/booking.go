package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/middleware"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/internal/utils"
	"github.com/quickfix-app/quickfix/services/booking"
	"github.com/quickfix-app/quickfix/services/geo"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking creates a new booking for the authenticated requester
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind booking request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	// The requester is always the authenticated caller, not the payload.
	req.RequesterID = actor.ID

	created, err := h.bookingUC.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidRequest) {
			return utils.BadRequestResponse(c, "service type or technician is required")
		}
		logger.Error("Failed to create booking", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to create booking")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", created)
}

// GetBooking returns a booking visible to the caller
func (h *BookingHandler) GetBooking(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "booking id is required")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), actor, bookingID)
	if err != nil {
		return h.mapError(c, err, "failed to get booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", b)
}

// ListBookings returns the bookings visible to the caller, optionally
// narrowed to a single status (?status=Pending)
func (h *BookingHandler) ListBookings(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), actor)
	if err != nil {
		logger.Error("Failed to list bookings", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list bookings")
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := models.BookingStatus(raw)
		if !status.Known() {
			return utils.BadRequestResponse(c, "unknown status")
		}
		filtered := make([]*models.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", bookings)
}

// ChangeStatus applies a status transition to a booking
func (h *BookingHandler) ChangeStatus(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "booking id is required")
	}

	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind status request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	updated, err := h.bookingUC.ChangeStatus(c.Request().Context(), actor, bookingID, req.Status)
	if err != nil {
		return h.mapError(c, err, "failed to change booking status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated", updated)
}

// Reassign overrides the assigned technician (admin only)
func (h *BookingHandler) Reassign(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "booking id is required")
	}

	var req struct {
		TechnicianID string `json:"technician_id"`
	}
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind reassign request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	updated, err := h.bookingUC.Reassign(c.Request().Context(), actor, bookingID, req.TechnicianID)
	if err != nil {
		return h.mapError(c, err, "failed to reassign booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking reassigned", updated)
}

// MarkPayment moves the booking's payment status
func (h *BookingHandler) MarkPayment(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "booking id is required")
	}

	var req struct {
		PaymentStatus models.PaymentStatus `json:"payment_status"`
	}
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind payment request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	updated, err := h.bookingUC.MarkPayment(c.Request().Context(), actor, bookingID, req.PaymentStatus)
	if err != nil {
		return h.mapError(c, err, "failed to update payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status updated", updated)
}

// RateBooking records the requester's rating of a completed booking
func (h *BookingHandler) RateBooking(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "booking id is required")
	}

	var req struct {
		Rating float64 `json:"rating"`
	}
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind rating request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	updated, err := h.bookingUC.RateBooking(c.Request().Context(), actor, bookingID, req.Rating)
	if err != nil {
		return h.mapError(c, err, "failed to rate booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking rated", updated)
}

func (h *BookingHandler) mapError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return utils.NotFoundResponse(c, "booking not found")
	case errors.Is(err, booking.ErrForbidden):
		return utils.ForbiddenResponse(c, "not allowed for this booking")
	case errors.Is(err, booking.ErrInvalidTransition):
		return utils.ConflictResponse(c, "invalid status transition")
	case errors.Is(err, booking.ErrStatusConflict):
		return utils.ConflictResponse(c, "booking status changed concurrently, retry with fresh state")
	case errors.Is(err, booking.ErrAlreadyRated):
		return utils.ConflictResponse(c, "booking already rated")
	case errors.Is(err, booking.ErrInvalidPayment):
		return utils.BadRequestResponse(c, "invalid payment status change")
	case errors.Is(err, booking.ErrNotCompleted):
		return utils.BadRequestResponse(c, "booking is not completed")
	case errors.Is(err, booking.ErrInvalidRequest):
		return utils.BadRequestResponse(c, "invalid request")
	case errors.Is(err, geo.ErrInvalidRating):
		return utils.BadRequestResponse(c, "rating must be between 1 and 5")
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
