package service

import (
	"context"
	"fmt"
	"time"

	"pos-settlement/internal/core/ports"
	"pos-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// reportingService implements ports.ReportingService.
type reportingService struct {
	repo     ports.ConfirmationRepository
	cache    ports.StatsCache
	cacheTTL time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewReportingService creates a new reporting service. cache may be nil.
func NewReportingService(
	repo ports.ConfirmationRepository,
	cache ports.StatsCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) ports.ReportingService {
	return &reportingService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		now:      time.Now,
		log:      log,
	}
}

// GetStats returns aggregated confirmed-settlement stats for the store.
func (s *reportingService) GetStats(ctx context.Context, storeID, period string) (*ports.SettlementStats, error) {
	var since *time.Time

	now := s.now()
	switch period {
	case "day":
		t := now.AddDate(0, 0, -1)
		since = &t
	case "week":
		t := now.AddDate(0, 0, -7)
		since = &t
	case "month":
		t := now.AddDate(0, -1, 0)
		since = &t
	case "all", "":
		period = "all"
	default:
		return nil, apperror.Validation("invalid period: must be day, week, month, or all")
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, storeID, period)
		if err != nil {
			s.log.Warn().Err(err).Str("store_id", storeID).Msg("stats cache read failed, querying database")
		}
		if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.GetStats(ctx, storeID, since)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("settlement stats: %w", err))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, storeID, period, stats, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("store_id", storeID).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

// Invalidate drops the cached stats of a store after a confirm.
func (s *reportingService) Invalidate(ctx context.Context, storeID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, storeID); err != nil {
		s.log.Warn().Err(err).Str("store_id", storeID).Msg("stats cache invalidation failed")
	}
}
