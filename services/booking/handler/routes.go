package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/quickfix-app/quickfix/internal/pkg/middleware"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/booking"
	httpHandler "github.com/quickfix-app/quickfix/services/booking/handler/http"
)

// HTTPHandler combines all handlers for the booking service
type HTTPHandler struct {
	bookingHTTP *httpHandler.BookingHandler
	cfg         *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(cfg *models.Config, bookingUC booking.BookingUC) *HTTPHandler {
	return &HTTPHandler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))

	bookings.POST("", h.bookingHTTP.CreateBooking)
	bookings.GET("", h.bookingHTTP.ListBookings)
	bookings.GET("/:id", h.bookingHTTP.GetBooking)
	bookings.PUT("/:id/status", h.bookingHTTP.ChangeStatus)
	bookings.PUT("/:id/assign", h.bookingHTTP.Reassign)
	bookings.PUT("/:id/payment", h.bookingHTTP.MarkPayment)
	bookings.POST("/:id/rating", h.bookingHTTP.RateBooking)
}
