package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/quickfix-app/quickfix/internal/pkg/constants"
	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
)

const writeTimeout = 5 * time.Second

// Manager manages WebSocket connections and their room membership.
// Rooms are addressed by user id (user:{id}) and by role (role:{role});
// an event published to a room reaches every connected member. A slow or
// dead member is dropped, never waited on.
type Manager struct {
	sync.RWMutex
	rooms    map[string]map[*models.WebSocketClient]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		rooms: make(map[string]map[*models.WebSocketClient]struct{}),
		cfg:   jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and serves a WebSocket subscriber until
// the connection closes. The client is joined to its user room and, when
// it carries a role, the matching role room.
func (m *Manager) HandleConnection(c echo.Context) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.join(constants.RoomUserPrefix+client.UserID, client)
	if client.Role != "" {
		m.join(constants.RoomRolePrefix+client.Role, client)
	}
	defer m.removeClient(client)

	return m.readLoop(client)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (m *Manager) readLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		var wsMsg models.WSMessage
		if err := json.Unmarshal(msg, &wsMsg); err != nil {
			m.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
			continue
		}

		// Subscribers are push-only; ping is the only inbound event served.
		if wsMsg.Event == constants.EventPing {
			m.send(client, constants.EventPong, nil)
		}
	}
}

func (m *Manager) join(room string, client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	members, ok := m.rooms[room]
	if !ok {
		members = make(map[*models.WebSocketClient]struct{})
		m.rooms[room] = members
	}
	members[client] = struct{}{}
}

func (m *Manager) removeClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	for room, members := range m.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
}

// RoomSize returns the number of clients joined to a room
func (m *Manager) RoomSize(room string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.rooms[room])
}

// NotifyRoom delivers an event to every client in the room. Delivery is
// best effort per client: a write failure drops that client only.
func (m *Manager) NotifyRoom(room, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to marshal room event",
			logger.String("room", room),
			logger.String("event", event),
			logger.Err(err))
		return
	}

	m.RLock()
	members := make([]*models.WebSocketClient, 0, len(m.rooms[room]))
	for client := range m.rooms[room] {
		members = append(members, client)
	}
	m.RUnlock()

	for _, client := range members {
		if err := m.write(client, models.WSMessage{Event: event, Data: payload}); err != nil {
			logger.Warn("Dropping unresponsive subscriber",
				logger.String("room", room),
				logger.String("user_id", client.UserID),
				logger.Err(err))
			m.removeClient(client)
			client.Conn.Close()
		}
	}
}

func (m *Manager) send(client *models.WebSocketClient, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	_ = m.write(client, models.WSMessage{Event: event, Data: payload})
}

// SendErrorMessage sends an error event to a single client
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code, message string) {
	m.send(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

func (m *Manager) write(client *models.WebSocketClient, msg models.WSMessage) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	client.WriteMu.Lock()
	defer client.WriteMu.Unlock()
	_ = client.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return client.Conn.WriteMessage(websocket.TextMessage, raw)
}
