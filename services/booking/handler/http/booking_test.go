package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/booking"
	"github.com/quickfix-app/quickfix/services/booking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, method, target, body, actorID, actorRole string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", actorID)
	c.Set("user_role", actorRole)
	return c, rec
}

func TestCreateBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	body := `{"service_type": "Plumbing", "requester_id": "spoofed-user", "address": "123 Main St"}`
	c, rec := newContext(t, http.MethodPost, "/bookings", body, "user-1", models.RoleUser)

	mockUC.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.BookingRequest) (*models.Booking, error) {
			// The payload's requester_id must be overridden by the caller's
			// authenticated identity.
			assert.Equal(t, "user-1", req.RequesterID)
			assert.Equal(t, "Plumbing", req.ServiceType)
			return &models.Booking{
				ID:          "booking-1",
				RequesterID: req.RequesterID,
				Status:      models.BookingStatusPending,
			}, nil
		})

	err := handler.CreateBooking(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "booking-1", data["id"])
	assert.Equal(t, string(models.BookingStatusPending), data["status"])
}

func TestCreateBooking_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	c, rec := newContext(t, http.MethodPost, "/bookings", `{invalid_json}`, "user-1", models.RoleUser)

	err := handler.CreateBooking(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeStatus_ConflictMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	c, rec := newContext(t, http.MethodPut, "/bookings/booking-1/status",
		`{"status": "Accepted"}`, "tech-1", models.RoleTechnician)
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	mockUC.EXPECT().
		ChangeStatus(gomock.Any(), models.Actor{ID: "tech-1", Role: models.RoleTechnician}, "booking-1", models.BookingStatusAccepted).
		Return(nil, booking.ErrStatusConflict)

	err := handler.ChangeStatus(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestChangeStatus_ForbiddenMapsTo403(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	c, rec := newContext(t, http.MethodPut, "/bookings/booking-1/status",
		`{"status": "Accepted"}`, "user-2", models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	mockUC.EXPECT().
		ChangeStatus(gomock.Any(), gomock.Any(), "booking-1", models.BookingStatusAccepted).
		Return(nil, booking.ErrForbidden)

	err := handler.ChangeStatus(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetBooking_NotFoundMapsTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	c, rec := newContext(t, http.MethodGet, "/bookings/missing", "", "user-1", models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	mockUC.EXPECT().
		GetBooking(gomock.Any(), gomock.Any(), "missing").
		Return(nil, booking.ErrBookingNotFound)

	err := handler.GetBooking(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBookings_StatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	c, rec := newContext(t, http.MethodGet, "/bookings?status=Pending", "", "tech-1", models.RoleTechnician)

	mockUC.EXPECT().
		ListBookings(gomock.Any(), gomock.Any()).
		Return([]*models.Booking{
			{ID: "b1", Status: models.BookingStatusPending},
			{ID: "b2", Status: models.BookingStatusCompleted},
			{ID: "b3", Status: models.BookingStatusPending},
		}, nil)

	err := handler.ListBookings(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data, ok := response["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestListBookings_UnknownStatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	c, rec := newContext(t, http.MethodGet, "/bookings?status=Paused", "", "user-1", models.RoleUser)

	mockUC.EXPECT().
		ListBookings(gomock.Any(), gomock.Any()).
		Return([]*models.Booking{}, nil)

	err := handler.ListBookings(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkPayment_InvalidMoveMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	c, rec := newContext(t, http.MethodPut, "/bookings/booking-1/payment",
		`{"payment_status": "refunded"}`, "admin-1", models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	mockUC.EXPECT().
		MarkPayment(gomock.Any(), gomock.Any(), "booking-1", models.PaymentStatusRefunded).
		Return(nil, booking.ErrInvalidPayment)

	err := handler.MarkPayment(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateBooking_AlreadyRatedMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	c, rec := newContext(t, http.MethodPost, "/bookings/booking-1/rating",
		`{"rating": 5}`, "user-1", models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	mockUC.EXPECT().
		RateBooking(gomock.Any(), gomock.Any(), "booking-1", 5.0).
		Return(nil, booking.ErrAlreadyRated)

	err := handler.RateBooking(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
