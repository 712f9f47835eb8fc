package models

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents a connected real-time subscriber. The write
// mutex serializes frames: gorilla/websocket allows one concurrent writer.
type WebSocketClient struct {
	UserID  string
	Role    string
	Conn    *websocket.Conn
	WriteMu sync.Mutex
}

// WebSocketClaims are the JWT claims required to open a connection
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
