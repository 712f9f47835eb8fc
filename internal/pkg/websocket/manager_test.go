package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/quickfix-app/quickfix/internal/pkg/constants"
	jwtpkg "github.com/quickfix-app/quickfix/internal/pkg/jwt"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	return NewManager(models.JWTConfig{Secret: "test-secret"})
}

// dialSubscriber upgrades a server-side connection, joins it to the given
// rooms, and returns the client-side connection for reading.
func dialSubscriber(t *testing.T, m *Manager, userID string, rooms ...string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		client := &models.WebSocketClient{UserID: userID, Conn: ws}
		for _, room := range rooms {
			m.join(room, client)
		}
		close(registered)
		// Hold the server side open for the duration of the test.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	<-registered
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg models.WSMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	return msg
}

func TestNotifyRoom_DeliversToAllMembers(t *testing.T) {
	m := testManager()

	requesterConn := dialSubscriber(t, m, "user-1", constants.RoomUserPrefix+"user-1")
	adminConn := dialSubscriber(t, m, "admin-1", constants.RoomRolePrefix+"admin")

	event := models.LifecycleEvent{
		BookingID:   "booking-1",
		Kind:        models.EventKindCreated,
		RequesterID: "user-1",
	}
	m.NotifyRoom(constants.RoomUserPrefix+"user-1", constants.EventBookingCreated, event)
	m.NotifyRoom(constants.RoomRolePrefix+"admin", constants.EventBookingCreated, event)

	for _, conn := range []*websocket.Conn{requesterConn, adminConn} {
		msg := readEvent(t, conn)
		assert.Equal(t, constants.EventBookingCreated, msg.Event)

		var got models.LifecycleEvent
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, "booking-1", got.BookingID)
	}
}

func TestNotifyRoom_PreservesPublishOrder(t *testing.T) {
	m := testManager()
	conn := dialSubscriber(t, m, "user-1", constants.RoomUserPrefix+"user-1")

	statuses := []models.BookingStatus{
		models.BookingStatusAccepted,
		models.BookingStatusEnRoute,
		models.BookingStatusArrived,
	}
	for _, s := range statuses {
		m.NotifyRoom(constants.RoomUserPrefix+"user-1", constants.EventBookingStatus,
			models.LifecycleEvent{BookingID: "booking-1", Status: s})
	}

	for _, want := range statuses {
		msg := readEvent(t, conn)
		var got models.LifecycleEvent
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, want, got.Status)
	}
}

func TestNotifyRoom_EmptyRoomIsANoop(t *testing.T) {
	m := testManager()
	m.NotifyRoom(constants.RoomUserPrefix+"nobody", constants.EventBookingStatus, nil)
}

func TestNotifyRoom_DropsDeadSubscriber(t *testing.T) {
	m := testManager()
	room := constants.RoomUserPrefix + "user-1"
	conn := dialSubscriber(t, m, "user-1", room)

	require.Equal(t, 1, m.RoomSize(room))
	conn.Close()

	// The first write after the close may still land in the OS buffer; keep
	// publishing until the failed write evicts the client.
	deadline := time.Now().Add(2 * time.Second)
	for m.RoomSize(room) > 0 && time.Now().Before(deadline) {
		m.NotifyRoom(room, constants.EventBookingStatus,
			models.LifecycleEvent{BookingID: "booking-1"})
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, m.RoomSize(room))
}

func TestRoomMembership(t *testing.T) {
	m := testManager()

	client := &models.WebSocketClient{UserID: "user-1", Role: "technician"}
	m.join(constants.RoomUserPrefix+"user-1", client)
	m.join(constants.RoomRolePrefix+"technician", client)

	assert.Equal(t, 1, m.RoomSize(constants.RoomUserPrefix+"user-1"))
	assert.Equal(t, 1, m.RoomSize(constants.RoomRolePrefix+"technician"))

	m.removeClient(client)
	assert.Equal(t, 0, m.RoomSize(constants.RoomUserPrefix+"user-1"))
	assert.Equal(t, 0, m.RoomSize(constants.RoomRolePrefix+"technician"))
}

func TestHandleConnection_AcceptsIssuedToken(t *testing.T) {
	m := testManager()
	e := echo.New()
	e.GET("/ws", m.HandleConnection)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "quickfix"}}
	token, expiresAt, err := jwtpkg.GenerateToken("user-1", "technician", cfg)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{"Authorization": {"Bearer " + token}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Subscribers are push-only; the ping round trip proves the connection
	// is authenticated and served.
	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: constants.EventPing}))
	msg := readEvent(t, conn)
	assert.Equal(t, constants.EventPong, msg.Event)

	assert.Equal(t, 1, m.RoomSize(constants.RoomUserPrefix+"user-1"))
	assert.Equal(t, 1, m.RoomSize(constants.RoomRolePrefix+"technician"))
}

func TestHandleConnection_RejectsMissingToken(t *testing.T) {
	m := testManager()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.HandleConnection(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestHandleConnection_RejectsMalformedHeader(t *testing.T) {
	m := testManager()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.HandleConnection(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
