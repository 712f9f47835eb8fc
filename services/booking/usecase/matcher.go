package usecase

import (
	"context"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/geo"
)

// Matcher resolves a technician for a new booking. Two tiers run in
// order and the first hit wins: nearest available technician with the
// skill, then any technician with the skill ranked by profile recency.
// A miss or a query timeout yields no match, never an error; booking
// creation must not fail because nobody is matchable right now.
type Matcher struct {
	cfg   *models.Config
	geoUC geo.GeoUC
}

// NewMatcher creates a new matcher
func NewMatcher(cfg *models.Config, geoUC geo.GeoUC) *Matcher {
	return &Matcher{
		cfg:   cfg,
		geoUC: geoUC,
	}
}

// AssignTechnician returns the selected technician id, or false when no
// technician is matchable.
func (m *Matcher) AssignTechnician(ctx context.Context, skill string, origin *models.Location) (string, bool) {
	timeout := time.Duration(m.cfg.Match.QueryTimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if origin != nil {
		candidates, err := m.geoUC.FindCandidates(ctx, *origin, skill, m.cfg.Match.SearchRadiusKm, 1)
		if err != nil {
			logger.Warn("Nearest-candidate query failed, falling back to recency tier",
				logger.String("skill", skill),
				logger.Err(err))
		} else if len(candidates) > 0 {
			return candidates[0].TechnicianID, true
		}
	}

	technicianIDs, err := m.geoUC.FindBySkill(ctx, skill, 1)
	if err != nil {
		logger.Warn("Recency-tier query failed, booking will be unassigned",
			logger.String("skill", skill),
			logger.Err(err))
		return "", false
	}
	if len(technicianIDs) == 0 {
		return "", false
	}
	return technicianIDs[0], true
}
