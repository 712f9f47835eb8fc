package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/constants"
	"github.com/quickfix-app/quickfix/internal/pkg/database"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/internal/utils"
	"github.com/quickfix-app/quickfix/services/geo"
)

// geohashPrecision gives ~150m cells, enough for dispatch-grade locality.
const geohashPrecision = 7

type technicianRepo struct {
	redisClient *database.RedisClient
}

// NewTechnicianRepository creates a geo repository backed by Redis
func NewTechnicianRepository(redisClient *database.RedisClient) geo.GeoRepo {
	return &technicianRepo{
		redisClient: redisClient,
	}
}

// UpsertLocation stores a technician's current location and re-homes their
// membership in every per-skill geo set. The geo sets hold available
// technicians only, so a count-capped radius query never spends a result
// slot on someone who cannot take work; an unavailable technician's
// location lands in the state hash and re-enters the geo sets when they
// flip back to available. Last write wins; a concurrent reader may observe
// the previous location, which is acceptable.
func (r *technicianRepo) UpsertLocation(ctx context.Context, technicianID string, location models.Location, at time.Time) error {
	stateKey := fmt.Sprintf(constants.KeyTechnicianState, technicianID)
	state := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldUpdatedAt: strconv.FormatInt(at.Unix(), 10),
		constants.FieldGeohash:   utils.EncodeLocation(location, geohashPrecision),
	}

	if err := r.redisClient.HMSet(ctx, stateKey, state); err != nil {
		return fmt.Errorf("failed to store technician location: %w", err)
	}

	skillSet, err := r.GetSkills(ctx, technicianID)
	if err != nil {
		return err
	}

	available, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableSet, technicianID)
	if err != nil {
		return fmt.Errorf("failed to read availability: %w", err)
	}

	for _, skill := range skillSet {
		if available {
			if err := r.redisClient.GeoAdd(ctx, fmt.Sprintf(constants.KeySkillGeo, skill), location.Longitude, location.Latitude, technicianID); err != nil {
				return fmt.Errorf("failed to index technician for skill %s: %w", skill, err)
			}
		}
		if err := r.redisClient.ZAdd(ctx, fmt.Sprintf(constants.KeySkillRecency, skill), float64(at.Unix()), technicianID); err != nil {
			return fmt.Errorf("failed to update recency for skill %s: %w", skill, err)
		}
	}

	return nil
}

// SetAvailability flips the availability flag and re-homes the per-skill
// geo membership: going unavailable removes the technician from every
// skill's geo set, going available re-adds them at their stored location.
func (r *technicianRepo) SetAvailability(ctx context.Context, technicianID string, available bool) error {
	stateKey := fmt.Sprintf(constants.KeyTechnicianState, technicianID)
	flag := "0"
	if available {
		flag = "1"
	}

	if err := r.redisClient.HMSet(ctx, stateKey, map[string]interface{}{
		constants.FieldAvailable: flag,
	}); err != nil {
		return fmt.Errorf("failed to store availability: %w", err)
	}

	if available {
		if err := r.redisClient.SAdd(ctx, constants.KeyAvailableSet, technicianID); err != nil {
			return fmt.Errorf("failed to add to available set: %w", err)
		}
	} else {
		if err := r.redisClient.SRem(ctx, constants.KeyAvailableSet, technicianID); err != nil {
			return fmt.Errorf("failed to remove from available set: %w", err)
		}
	}

	skillSet, err := r.GetSkills(ctx, technicianID)
	if err != nil {
		return err
	}

	if available {
		location, ok, err := r.storedLocation(ctx, technicianID)
		if err != nil {
			return err
		}
		if ok {
			for _, skill := range skillSet {
				if err := r.redisClient.GeoAdd(ctx, fmt.Sprintf(constants.KeySkillGeo, skill), location.Longitude, location.Latitude, technicianID); err != nil {
					return fmt.Errorf("failed to index technician for skill %s: %w", skill, err)
				}
			}
		}
	} else {
		for _, skill := range skillSet {
			if err := r.redisClient.GeoRemove(ctx, fmt.Sprintf(constants.KeySkillGeo, skill), technicianID); err != nil {
				return fmt.Errorf("failed to remove skill geo membership: %w", err)
			}
		}
	}

	return r.touch(ctx, technicianID, time.Now())
}

// SetServiceRadius stores the technician's service radius in kilometers
func (r *technicianRepo) SetServiceRadius(ctx context.Context, technicianID string, radiusKm float64) error {
	stateKey := fmt.Sprintf(constants.KeyTechnicianState, technicianID)
	if err := r.redisClient.HMSet(ctx, stateKey, map[string]interface{}{
		constants.FieldRadius: strconv.FormatFloat(radiusKm, 'f', -1, 64),
	}); err != nil {
		return fmt.Errorf("failed to store service radius: %w", err)
	}
	return nil
}

// SetSkills replaces a technician's skill set and re-homes their geo and
// recency membership across the per-skill keys.
func (r *technicianRepo) SetSkills(ctx context.Context, technicianID string, skillSet []string) error {
	previous, err := r.GetSkills(ctx, technicianID)
	if err != nil {
		return err
	}

	next := make(map[string]struct{}, len(skillSet))
	for _, skill := range skillSet {
		next[skill] = struct{}{}
	}

	for _, skill := range previous {
		if _, keep := next[skill]; keep {
			continue
		}
		if err := r.redisClient.GeoRemove(ctx, fmt.Sprintf(constants.KeySkillGeo, skill), technicianID); err != nil {
			return fmt.Errorf("failed to remove skill geo membership: %w", err)
		}
		if err := r.redisClient.ZRem(ctx, fmt.Sprintf(constants.KeySkillRecency, skill), technicianID); err != nil {
			return fmt.Errorf("failed to remove skill recency membership: %w", err)
		}
	}

	skillsKey := fmt.Sprintf(constants.KeyTechnicianSkills, technicianID)
	if err := r.redisClient.Delete(ctx, skillsKey); err != nil {
		return fmt.Errorf("failed to reset skills: %w", err)
	}
	if len(skillSet) > 0 {
		if err := r.redisClient.SAdd(ctx, skillsKey, skillSet...); err != nil {
			return fmt.Errorf("failed to store skills: %w", err)
		}
	}

	// Index the new skills at the current location. Geo membership is for
	// available technicians only; recency membership is unconditional.
	location, hasLocation, err := r.storedLocation(ctx, technicianID)
	if err != nil {
		return err
	}
	available, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableSet, technicianID)
	if err != nil {
		return fmt.Errorf("failed to read availability: %w", err)
	}

	now := time.Now()
	for _, skill := range skillSet {
		if hasLocation && available {
			if err := r.redisClient.GeoAdd(ctx, fmt.Sprintf(constants.KeySkillGeo, skill), location.Longitude, location.Latitude, technicianID); err != nil {
				return fmt.Errorf("failed to index technician for skill %s: %w", skill, err)
			}
		}
		if err := r.redisClient.ZAdd(ctx, fmt.Sprintf(constants.KeySkillRecency, skill), float64(now.Unix()), technicianID); err != nil {
			return fmt.Errorf("failed to update recency for skill %s: %w", skill, err)
		}
	}

	return nil
}

// storedLocation reads the technician's last stored coordinates. ok is
// false when no location has ever been reported.
func (r *technicianRepo) storedLocation(ctx context.Context, technicianID string) (models.Location, bool, error) {
	stateKey := fmt.Sprintf(constants.KeyTechnicianState, technicianID)
	values, err := r.redisClient.HMGet(ctx, stateKey, constants.FieldLatitude, constants.FieldLongitude)
	if err != nil {
		return models.Location{}, false, fmt.Errorf("failed to read technician location: %w", err)
	}
	if values[0] == "" || values[1] == "" {
		return models.Location{}, false, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return models.Location{}, false, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return models.Location{}, false, fmt.Errorf("invalid longitude: %w", err)
	}
	return models.Location{Latitude: lat, Longitude: lng}, true, nil
}

// GetSkills returns the technician's stored canonical skills
func (r *technicianRepo) GetSkills(ctx context.Context, technicianID string) ([]string, error) {
	skills, err := r.redisClient.Client.SMembers(ctx, fmt.Sprintf(constants.KeyTechnicianSkills, technicianID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}
	return skills, nil
}

// GetState reads a technician's live dispatch state
func (r *technicianRepo) GetState(ctx context.Context, technicianID string) (*geo.CandidateState, error) {
	stateKey := fmt.Sprintf(constants.KeyTechnicianState, technicianID)
	values, err := r.redisClient.HMGet(ctx, stateKey,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldUpdatedAt,
		constants.FieldAvailable,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read technician state: %w", err)
	}

	empty := true
	for _, v := range values {
		if v != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil, geo.ErrTechnicianNotFound
	}

	state := &geo.CandidateState{
		TechnicianID: technicianID,
		Available:    values[3] == "1",
	}

	if values[0] != "" && values[1] != "" {
		lat, err := strconv.ParseFloat(values[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %w", err)
		}
		lng, err := strconv.ParseFloat(values[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %w", err)
		}
		state.Location = models.Location{Latitude: lat, Longitude: lng}
	}

	if values[2] != "" {
		ts, err := strconv.ParseInt(values[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp: %w", err)
		}
		state.UpdatedAt = time.Unix(ts, 0)
	}

	return state, nil
}

// SearchRadius returns the live state of every technician with the skill
// inside the radius. The skill's geo set holds available technicians
// only, so the count cap cannot hide an eligible member behind an
// ineligible one; the state hash stays authoritative for coordinates and
// availability, covering the window between a flag flip and the geo
// re-home.
func (r *technicianRepo) SearchRadius(ctx context.Context, skill string, origin models.Location, radiusKm float64, limit int) ([]geo.CandidateState, error) {
	locations, err := r.redisClient.GeoRadius(ctx, fmt.Sprintf(constants.KeySkillGeo, skill), origin.Longitude, origin.Latitude, radiusKm, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search skill geo set: %w", err)
	}

	candidates := make([]geo.CandidateState, 0, len(locations))
	for _, loc := range locations {
		state, err := r.GetState(ctx, loc.Name)
		if err != nil {
			// A member with no state hash was torn down mid-read; skip it.
			continue
		}
		candidates = append(candidates, *state)
	}

	return candidates, nil
}

// RecentBySkill returns technician ids holding the skill, most recently
// updated state first. Used by the tier-2 fallback where no location-based
// ranking applies.
func (r *technicianRepo) RecentBySkill(ctx context.Context, skill string, limit int) ([]string, error) {
	ids, err := r.redisClient.ZRevRange(ctx, fmt.Sprintf(constants.KeySkillRecency, skill), 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("failed to read skill recency set: %w", err)
	}
	return ids, nil
}

// AddRating folds a new rating into the technician's running summary.
// Sum and count advance atomically, so the count never decreases.
func (r *technicianRepo) AddRating(ctx context.Context, technicianID string, rating float64) (float64, int, error) {
	stateKey := fmt.Sprintf(constants.KeyTechnicianState, technicianID)

	sum, err := r.redisClient.Client.HIncrByFloat(ctx, stateKey, constants.FieldRatingSum, rating).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update rating sum: %w", err)
	}
	count, err := r.redisClient.Client.HIncrBy(ctx, stateKey, constants.FieldRatingCount, 1).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update rating count: %w", err)
	}

	return sum / float64(count), int(count), nil
}

// GetRating returns the technician's rating average and count
func (r *technicianRepo) GetRating(ctx context.Context, technicianID string) (float64, int, error) {
	stateKey := fmt.Sprintf(constants.KeyTechnicianState, technicianID)
	values, err := r.redisClient.HMGet(ctx, stateKey, constants.FieldRatingSum, constants.FieldRatingCount)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read rating: %w", err)
	}
	if values[0] == "" || values[1] == "" {
		return 0, 0, nil
	}

	sum, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid rating sum: %w", err)
	}
	count, err := strconv.Atoi(values[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid rating count: %w", err)
	}
	if count == 0 {
		return 0, 0, nil
	}

	return sum / float64(count), count, nil
}

// touch bumps the technician's recency score across their skill sets
func (r *technicianRepo) touch(ctx context.Context, technicianID string, at time.Time) error {
	skillSet, err := r.GetSkills(ctx, technicianID)
	if err != nil {
		return err
	}
	for _, skill := range skillSet {
		if err := r.redisClient.ZAdd(ctx, fmt.Sprintf(constants.KeySkillRecency, skill), float64(at.Unix()), technicianID); err != nil {
			return fmt.Errorf("failed to update recency for skill %s: %w", skill, err)
		}
	}
	return nil
}
