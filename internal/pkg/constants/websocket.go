package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Booking events
	EventBookingCreated = "booking:new"
	EventBookingStatus  = "booking:status"
)

// WebSocket room prefixes. Clients join their user room on connect and a
// role room when they carry one (all connected admins share role:admin).
const (
	RoomUserPrefix = "user:"
	RoomRolePrefix = "role:"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
