package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/internal/utils"
	"github.com/quickfix-app/quickfix/services/geo"
	"github.com/quickfix-app/quickfix/services/skills"
)

// defaultCandidateLimit bounds result size for resource control only;
// correctness never depends on it.
const defaultCandidateLimit = 50

type geoUC struct {
	cfg     *models.Config
	geoRepo geo.GeoRepo
}

// NewGeoUC creates the geo index use case
func NewGeoUC(cfg *models.Config, geoRepo geo.GeoRepo) geo.GeoUC {
	return &geoUC{
		cfg:     cfg,
		geoRepo: geoRepo,
	}
}

// FindCandidates returns available technicians holding the skill within
// radiusKm of origin, nearest first. Ties break to the fresher location,
// then to the lower technician id for determinism. An empty result is a
// normal outcome meaning no match.
func (uc *geoUC) FindCandidates(ctx context.Context, origin models.Location, skill string, radiusKm float64, limit int) ([]models.MatchCandidate, error) {
	if !origin.Valid() {
		return nil, geo.ErrInvalidLocation
	}
	if limit <= 0 {
		limit = defaultCandidateLimit
	}

	states, err := uc.geoRepo.SearchRadius(ctx, skill, origin, radiusKm, limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.MatchCandidate, 0, len(states))
	for _, state := range states {
		if !state.Available || !state.Location.Valid() {
			continue
		}
		distance := utils.CalculateDistance(origin, state.Location)
		if distance > radiusKm {
			continue
		}
		candidates = append(candidates, models.MatchCandidate{
			TechnicianID:      state.TechnicianID,
			DistanceKm:        distance,
			LocationUpdatedAt: state.UpdatedAt,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		if !candidates[i].LocationUpdatedAt.Equal(candidates[j].LocationUpdatedAt) {
			return candidates[i].LocationUpdatedAt.After(candidates[j].LocationUpdatedAt)
		}
		return candidates[i].TechnicianID < candidates[j].TechnicianID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

// FindBySkill returns technicians holding the skill regardless of
// availability, most recently updated first. This is the tier-2 fallback
// pool; no location ranking applies to it.
func (uc *geoUC) FindBySkill(ctx context.Context, skill string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultCandidateLimit
	}
	return uc.geoRepo.RecentBySkill(ctx, skill, limit)
}

// UpdateLocation stores the technician's current position
func (uc *geoUC) UpdateLocation(ctx context.Context, technicianID string, location models.Location) error {
	if !location.Valid() {
		return geo.ErrInvalidLocation
	}

	if err := uc.geoRepo.UpsertLocation(ctx, technicianID, location, time.Now()); err != nil {
		return err
	}

	logger.Debug("Technician location updated",
		logger.String("technician_id", technicianID),
		logger.Float64("latitude", location.Latitude),
		logger.Float64("longitude", location.Longitude))
	return nil
}

// SetAvailability flips the availability flag and optionally updates the
// service radius when a positive one is supplied.
func (uc *geoUC) SetAvailability(ctx context.Context, technicianID string, available bool, serviceRadiusKm float64) error {
	if serviceRadiusKm < 0 {
		return geo.ErrInvalidRadius
	}
	if serviceRadiusKm > 0 {
		if err := uc.geoRepo.SetServiceRadius(ctx, technicianID, serviceRadiusKm); err != nil {
			return err
		}
	}
	return uc.geoRepo.SetAvailability(ctx, technicianID, available)
}

// UpdateSkills normalizes, deduplicates and validates the skill set before
// storing it. Validation against the catalog happens only here, at write
// time; search tolerates skills stored before the catalog knew them.
func (uc *geoUC) UpdateSkills(ctx context.Context, technicianID string, rawSkills []string) error {
	seen := make(map[string]struct{}, len(rawSkills))
	canonical := make([]string, 0, len(rawSkills))
	for _, raw := range rawSkills {
		skill := skills.Normalize(raw)
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		canonical = append(canonical, skill)
	}

	if !skills.Validate(canonical) {
		return geo.ErrInvalidSkills
	}

	return uc.geoRepo.SetSkills(ctx, technicianID, canonical)
}

// AddRating folds a completed booking's rating into the technician's
// summary. The count only ever grows.
func (uc *geoUC) AddRating(ctx context.Context, technicianID string, rating float64) (float64, int, error) {
	if rating < 1 || rating > 5 {
		return 0, 0, geo.ErrInvalidRating
	}
	return uc.geoRepo.AddRating(ctx, technicianID, rating)
}
