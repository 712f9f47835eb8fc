package models

import "time"

// EventKind discriminates booking lifecycle events
type EventKind string

const (
	EventKindCreated       EventKind = "created"
	EventKindStatusChanged EventKind = "status_changed"
)

// LifecycleEvent is emitted on every successful booking creation,
// status transition or assignment. Consumed by real-time subscribers and
// the notification dispatcher; not persisted beyond delivery.
type LifecycleEvent struct {
	BookingID    string        `json:"booking_id"`
	Kind         EventKind     `json:"kind"`
	Status       BookingStatus `json:"status"`
	RequesterID  string        `json:"requester_id"`
	TechnicianID string        `json:"technician_id,omitempty"`
	ServiceSkill string        `json:"service_skill,omitempty"`
	ContactEmail string        `json:"contact_email,omitempty"`
	ContactPhone string        `json:"contact_phone,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}
