// Package geo owns the live technician dispatch state: location,
// availability, skills and rating summary. It answers nearest-candidate
// queries for the matching engine. Reads tolerate slightly stale
// locations; writes are last-write-wins per technician.
package geo

import (
	"context"
	"errors"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/models"
)

var (
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrInvalidLocation    = errors.New("invalid location coordinates")
	ErrInvalidSkills      = errors.New("invalid skills selected")
	ErrInvalidRadius      = errors.New("service radius must be positive")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)

// CandidateState is the raw per-technician state read for ranking
type CandidateState struct {
	TechnicianID string
	Location     models.Location
	UpdatedAt    time.Time
	Available    bool
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/quickfix-app/quickfix/services/geo GeoRepo

// GeoRepo persists technician dispatch state in the geo store
type GeoRepo interface {
	UpsertLocation(ctx context.Context, technicianID string, location models.Location, at time.Time) error
	SetAvailability(ctx context.Context, technicianID string, available bool) error
	SetServiceRadius(ctx context.Context, technicianID string, radiusKm float64) error
	SetSkills(ctx context.Context, technicianID string, skills []string) error
	GetSkills(ctx context.Context, technicianID string) ([]string, error)
	GetState(ctx context.Context, technicianID string) (*CandidateState, error)
	SearchRadius(ctx context.Context, skill string, origin models.Location, radiusKm float64, limit int) ([]CandidateState, error)
	RecentBySkill(ctx context.Context, skill string, limit int) ([]string, error)
	AddRating(ctx context.Context, technicianID string, rating float64) (average float64, count int, err error)
	GetRating(ctx context.Context, technicianID string) (average float64, count int, err error)
}

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/quickfix-app/quickfix/services/geo GeoUC

// GeoUC is the geo index contract exposed to the matching engine and the
// technician-facing HTTP surface
type GeoUC interface {
	FindCandidates(ctx context.Context, origin models.Location, skill string, radiusKm float64, limit int) ([]models.MatchCandidate, error)
	FindBySkill(ctx context.Context, skill string, limit int) ([]string, error)
	UpdateLocation(ctx context.Context, technicianID string, location models.Location) error
	SetAvailability(ctx context.Context, technicianID string, available bool, serviceRadiusKm float64) error
	UpdateSkills(ctx context.Context, technicianID string, skills []string) error
	AddRating(ctx context.Context, technicianID string, rating float64) (average float64, count int, err error)
}
