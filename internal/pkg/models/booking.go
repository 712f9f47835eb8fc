package models

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusAccepted  BookingStatus = "Accepted"
	BookingStatusEnRoute   BookingStatus = "En route"
	BookingStatusArrived   BookingStatus = "Arrived"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Terminal reports whether no further status transitions are legal.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Known reports whether s is one of the enumerated statuses.
func (s BookingStatus) Known() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusEnRoute,
		BookingStatusArrived, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is an axis independent from BookingStatus: a booking may
// complete while unpaid and that is not an error.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking represents a service booking. Bookings are never deleted; they
// end in Completed or Cancelled.
type Booking struct {
	ID            string        `json:"id" db:"id"`
	RequesterID   string        `json:"requester_id" db:"requester_id"`
	TechnicianID  string        `json:"technician_id,omitempty" db:"technician_id"`
	ServiceSkill  string        `json:"service_skill" db:"service_skill"`
	Date          string        `json:"date" db:"scheduled_date"`
	Time          string        `json:"time" db:"scheduled_time"`
	Address       string        `json:"address,omitempty" db:"address"`
	Notes         string        `json:"notes,omitempty" db:"notes"`
	ContactEmail  string        `json:"contact_email,omitempty" db:"contact_email"`
	ContactPhone  string        `json:"contact_phone,omitempty" db:"contact_phone"`
	Status        BookingStatus `json:"status" db:"status"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	Rating        *float64      `json:"rating,omitempty" db:"rating"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingRequest is the payload for creating a booking. Either a
// pre-selected technician or a service type must be supplied.
type BookingRequest struct {
	RequesterID  string    `json:"requester_id"`
	TechnicianID string    `json:"technician_id,omitempty"`
	ServiceType  string    `json:"service_type"`
	Origin       *Location `json:"origin,omitempty"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Address      string    `json:"address,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
}

// Caller roles carried in JWT claims
const (
	RoleUser       = "user"
	RoleTechnician = "technician"
	RoleAdmin      = "admin"
)

// Actor identifies the caller of a state-changing operation
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
