package models

import "time"

// Location represents a geographical coordinate pair
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Valid reports whether the coordinates fall inside the WGS84 ranges.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// TechnicianProfile represents a field technician's dispatch-relevant state.
// Location and availability are written by the technician themself; rating
// fields only by rating aggregation. The matching engine never mutates it.
type TechnicianProfile struct {
	ID                string     `json:"id" db:"id"`
	Skills            []string   `json:"skills" db:"skills"`
	Location          *Location  `json:"location,omitempty"`
	LocationUpdatedAt *time.Time `json:"location_updated_at,omitempty" db:"location_updated_at"`
	Available         bool       `json:"is_available" db:"is_available"`
	ServiceRadiusKm   float64    `json:"service_radius_km" db:"service_radius_km"`
	RatingAverage     float64    `json:"rating_average" db:"rating_average"`
	RatingCount       int        `json:"rating_count" db:"rating_count"`
	Email             string     `json:"email,omitempty" db:"email"`
	Phone             string     `json:"phone,omitempty" db:"phone"`
}

// MatchCandidate is a technician returned by a geo/skill query, not yet
// committed as the assigned technician. Ephemeral; never persisted.
type MatchCandidate struct {
	TechnicianID      string    `json:"technician_id"`
	DistanceKm        float64   `json:"distance_km"`
	LocationUpdatedAt time.Time `json:"location_updated_at"`
}
